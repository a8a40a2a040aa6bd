package assembler

import (
	"context"
	"testing"

	"github.com/specialistvlad/osmforge/internal/builder"
	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// One zone, four exterior walls sharing one two-layer construction, one
// constant schedule and ideal loads.
func TestAssemble_SingleZoneScenario(t *testing.T) {
	library := idf.NewLibrary(
		idf.NewRow("ScheduleTypeLimits", "Temperature", "-60", "200", "Continuous"),
		idf.NewRow("Schedule:Constant", "Always 21", "Temperature", "21.0"),
		idf.NewRow("Material", "Brick", "MediumRough", "0.1", "0.89", "1920", "790"),
		idf.NewRow("Material", "Insulation", "Rough", "0.05", "0.03", "43", "1210"),
		idf.NewRow("Construction", "Exterior Wall", "Brick", "Insulation"),
	)
	zone := &config.Zone{
		Name:                    "Z1",
		HeatingSetpointSchedule: "Always 21",
		HVACGroup:               0,
		HVACSystem:              0,
	}
	for i, l := range []config.Loop{wall(0, 0, 5, 0, 3), wall(5, 0, 5, 5, 3), wall(5, 5, 0, 5, 3), wall(0, 5, 0, 0, 3)} {
		zone.Surfaces = append(zone.Surfaces, &config.Surface{
			Name:         []string{"N", "E", "S", "W"}[i],
			Type:         "Wall",
			Construction: "Exterior Wall",
			Loops:        []config.Loop{l},
		})
	}

	ctx := ctxlog.Discard(context.Background())
	m, report, err := New().Assemble(ctx, Input{Building: &config.Model{Zones: []*config.Zone{zone}}, Library: library})
	require.NoError(t, err)
	assert.Empty(t, report.Warnings)

	assert.Len(t, osm.All[osm.Material](m), 2)
	constructions := osm.All[*osm.Construction](m)
	require.Len(t, constructions, 1)
	assert.Equal(t, 2, constructions[0].NumLayers())
	assert.Len(t, osm.All[osm.Schedule](m), 1)

	spaces := osm.All[*osm.Space](m)
	zones := osm.All[*osm.ThermalZone](m)
	require.Len(t, spaces, 1)
	require.Len(t, zones, 1)
	assert.Same(t, zones[0], spaces[0].ThermalZone)
	assert.True(t, zones[0].UseIdealAirLoads)

	surfaces := osm.All[*osm.Surface](m)
	require.Len(t, surfaces, 4)
	for _, s := range surfaces {
		assert.Same(t, constructions[0], s.Construction, s.Name())
		assert.Equal(t, osm.Outdoors, s.Boundary)
		assert.True(t, s.SunExposed)
	}
}

func TestAssemble_MissingRequiredInput(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())
	testCases := []struct {
		name string
		in   Input
	}{
		{name: "no building", in: Input{Library: idf.NewLibrary()}},
		{name: "no zones", in: Input{Building: &config.Model{}, Library: idf.NewLibrary()}},
		{name: "no library", in: Input{Building: &config.Model{Zones: []*config.Zone{{Name: "Z"}}}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, report, err := New().Assemble(ctx, tc.in)
			require.ErrorIs(t, err, ErrMissingRequiredInput)
			assert.Nil(t, m)
			assert.Nil(t, report)
		})
	}
}

func TestAssemble_Fixture(t *testing.T) {
	m, report := assemble(t, fixtureBuilding(t))
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 2, report.Zones)
	assert.Equal(t, 6, report.Surfaces)
	assert.Equal(t, 1, report.SubSurfaces)
	assert.Equal(t, 1, report.AdjacencyLinks)
	assert.Equal(t, 1, report.HVACSystems)

	// One space type for the shared program pair.
	spaceTypes := osm.All[*osm.SpaceType](m)
	require.Len(t, spaceTypes, 1)
	assert.Equal(t, "Office:OpenOffice", spaceTypes[0].Name())

	spaces := osm.All[*osm.Space](m)
	require.Len(t, spaces, 2)
	west := spaces[0]
	assert.Same(t, spaceTypes[0], spaces[1].SpaceType)
	assert.InDelta(t, 25, west.FloorArea, 1e-9)
	assert.InDelta(t, 1.25, west.People.Definition.NumberOfPeople, 1e-9)
	assert.Equal(t, "West_PeopleObject", west.People.Name())
	assert.Equal(t, "West_LightsDefinition", west.Lights.Definition.Name())
	assert.Equal(t, osm.WattsPerArea, west.Lights.Definition.Method)
	assert.InDelta(t, 250, west.Lights.Definition.DesignLevel, 1e-9)
	assert.Equal(t, "ElectricEquipment", west.ElectricEquipment.EndUseSubcategory)
	assert.Equal(t, "West_DSOA", west.OutdoorAir.Name())
	assert.Equal(t, "Sum", west.OutdoorAir.Method)
	assert.Equal(t, "West_DefaultScheduleSet", west.DefaultSchedules.Name())
	assert.Equal(t, "Office Occ", west.DefaultSchedules.Lighting.Name())
	assert.Nil(t, west.DefaultSchedules.Infiltration)

	// The year schedule and its parts are built once for both zones.
	assert.Len(t, osm.All[*osm.ScheduleYear](m), 1)
	assert.Same(t, west.Lights.Schedule, spaces[1].Lights.Schedule)

	// Simulation settings come from the file, the rest from defaults.
	ts, ok := osm.Unique[*osm.Timestep](m)
	require.True(t, ok)
	assert.Equal(t, 4, ts.PerHour)
	sc, ok := osm.Unique[*osm.SimulationControl](m)
	require.True(t, ok)
	assert.True(t, sc.RunForWeatherFilePeriods)
	assert.False(t, sc.DoZoneSizing)

	assert.Equal(t, []string{"Zone Air Temperature"}, names[*osm.OutputVariable](m))
	assert.Equal(t, []string{"Electricity:Facility"}, names[*osm.OutputMeter](m))
}

func TestAssemble_ThermostatOverride(t *testing.T) {
	m, _ := assemble(t, fixtureBuilding(t))
	zones := osm.All[*osm.ThermalZone](m)
	require.Len(t, zones, 2)

	west := zones[0].Thermostat
	assert.Equal(t, "dualSetPtThermostatWest", west.Name())
	assert.Equal(t, "Heating Sch 20", west.Heating.Name())
	assert.Equal(t, "Always 21", west.BaselineHeating.Name())
	assert.Same(t, west.BaselineCooling, west.Cooling)

	east := zones[1].Thermostat
	assert.Same(t, east.BaselineHeating, east.Heating)
	assert.Same(t, west.BaselineHeating, east.BaselineHeating)
}

func TestAssemble_FloorAreaOverride(t *testing.T) {
	building := fixtureBuilding(t)
	building.Zones[0].FloorArea = 40
	building.Zones[0].DaylightThreshold = new(float64)
	*building.Zones[0].DaylightThreshold = 300

	m, _ := assemble(t, building)
	west := osm.All[*osm.Space](m)[0]
	assert.Equal(t, 40.0, west.FloorArea)
	assert.Equal(t, osm.LightingLevel, west.Lights.Definition.Method)
	assert.Equal(t, 300.0, west.Lights.Definition.LightingLevel)
}

func TestAssemble_UnresolvedReferencesDegrade(t *testing.T) {
	building := fixtureBuilding(t)
	building.Zones[0].LightingSchedule = "No Such Schedule"
	building.Zones[1].Surfaces[2].Construction = "No Such Construction"
	building.Outputs = append(building.Outputs, "Output:Diagnostics,DisplayAllWarnings;", "Output:Meter,Gas;")

	m, report := assemble(t, building)

	assert.Nil(t, osm.All[*osm.Space](m)[0].Lights.Schedule)
	assert.Nil(t, surfaceByName(t, m, "East_WallN").Construction)
	// The missing schedule is looked up by the default set and by the lights.
	assert.Len(t, report.Warnings, 5)
	assert.Len(t, report.WarningsOf(builder.ErrUnsupportedType), 1)
	assert.Len(t, report.WarningsOf(builder.ErrMalformedDefinition), 1)
	assert.Len(t, report.WarningsOf(builder.ErrDefinitionNotFound), 3)
}
