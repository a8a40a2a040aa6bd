package assembler

import (
	"testing"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hvacZones(specs ...[2]int) *config.Model {
	m := &config.Model{}
	for i, s := range specs {
		m.Zones = append(m.Zones, &config.Zone{
			Name:       []string{"Z1", "Z2", "Z3", "Z4"}[i],
			HVACGroup:  s[0],
			HVACSystem: s[1],
		})
	}
	return m
}

func TestHVAC_GroupSharesOneAirLoop(t *testing.T) {
	m, report := assemble(t, hvacZones([2]int{3, 5}, [2]int{3, 5}, [2]int{4, 5}))

	loops := osm.All[*osm.AirLoopHVAC](m)
	require.Len(t, loops, 2)
	zones := osm.All[*osm.ThermalZone](m)

	shared := loops[0]
	assert.Equal(t, []*osm.ThermalZone{zones[0], zones[1]}, shared.Branches())
	assert.Same(t, zones[0].System, zones[1].System)
	assert.NotSame(t, zones[0].System, zones[2].System)
	assert.Equal(t, []*osm.ThermalZone{zones[2]}, loops[1].Branches())
	assert.Equal(t, 2, report.HVACSystems)
	assert.False(t, zones[0].UseIdealAirLoads)
}

func TestHVAC_Variants(t *testing.T) {
	m, report := assemble(t, hvacZones([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{-1, 0}))
	require.Empty(t, report.Warnings)

	zones := osm.All[*osm.ThermalZone](m)
	assert.True(t, zones[0].UseIdealAirLoads)
	assert.True(t, zones[3].UseIdealAirLoads)
	assert.NotSame(t, zones[0].System, zones[3].System)
	assert.Equal(t, -1, zones[3].System.Group)

	units := osm.All[*osm.PackagedTerminalUnit](m)
	require.Len(t, units, 2)
	assert.Same(t, zones[1], units[0].Zone)
	assert.False(t, units[0].HeatPump)
	assert.True(t, units[1].HeatPump)
	assert.Equal(t, []*osm.PackagedTerminalUnit{units[1]}, zones[2].System.Terminals)
	assert.Empty(t, osm.All[*osm.AirLoopHVAC](m))
}

func TestHVAC_UnsupportedSystemLeavesZonesDetached(t *testing.T) {
	m, report := assemble(t, hvacZones([2]int{7, 3}, [2]int{7, 3}, [2]int{8, 0}))

	warnings := report.WarningsOf(ErrUnsupportedHVACSystem)
	require.Len(t, warnings, 1)
	assert.ErrorContains(t, warnings[0], "group 7")

	zones := osm.All[*osm.ThermalZone](m)
	assert.Nil(t, zones[0].System)
	assert.Nil(t, zones[1].System)
	assert.NotNil(t, zones[2].System)
	assert.Equal(t, 1, report.HVACSystems)
}

func TestHVAC_FirstZoneDecidesGroupSystem(t *testing.T) {
	m, report := assemble(t, hvacZones([2]int{1, 5}, [2]int{1, 0}))

	require.Len(t, report.WarningsOf(ErrHVACGroupConflict), 1)
	loops := osm.All[*osm.AirLoopHVAC](m)
	require.Len(t, loops, 1)
	assert.Len(t, loops[0].Branches(), 2)
}
