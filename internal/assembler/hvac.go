package assembler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// hvacGroup is the system index declared by the group's first zone and the
// member zones in the order they joined.
type hvacGroup struct {
	id     int
	system osm.SystemType
	zones  []*osm.ThermalZone
}

// hvacTable keeps groups in order of first appearance.
type hvacTable struct {
	byID  map[int]*hvacGroup
	order []*hvacGroup
}

func newHVACTable() *hvacTable {
	return &hvacTable{byID: make(map[int]*hvacGroup)}
}

// recordHVAC adds the zone to its group, creating the group on first use for
// any id, including -1.
func (r *run) recordHVAC(ctx context.Context, z *config.Zone, tz *osm.ThermalZone) {
	system := osm.SystemType(z.HVACSystem)
	g, ok := r.groups.byID[z.HVACGroup]
	if !ok {
		g = &hvacGroup{id: z.HVACGroup, system: system}
		r.groups.byID[z.HVACGroup] = g
		r.groups.order = append(r.groups.order, g)
	} else if g.system != system {
		err := fmt.Errorf("%w: zone '%s' declares system %d but HVAC group %d uses %d",
			ErrHVACGroupConflict, z.Name, z.HVACSystem, z.HVACGroup, int(g.system))
		r.warn(ctx, "Zone joins an HVAC group with a different system.", err, "group", z.HVACGroup)
	}
	g.zones = append(g.zones, tz)
}

// instantiateHVAC builds one system per group and attaches its zones. It runs
// once, after every zone has been translated.
func (r *run) instantiateHVAC(ctx context.Context) {
	for _, g := range r.groups.order {
		logger := ctxlog.FromContext(ctx).With("group", g.id, "system", g.system.String())
		if !g.system.Supported() {
			err := fmt.Errorf("%w: HVAC group %d uses system index %d", ErrUnsupportedHVACSystem, g.id, int(g.system))
			r.warn(ctx, "HVAC system is not implemented; zones stay unconditioned.", err, "group", g.id, "zones", len(g.zones))
			continue
		}

		sys := osm.Add(r.model, fmt.Sprintf("HVAC Group %d %s", g.id, g.system), &osm.HVACSystem{Group: g.id, Type: g.system})
		switch g.system {
		case osm.PackagedVAV:
			sys.AirLoop = osm.Add(r.model, fmt.Sprintf("Packaged VAV Air Loop %d", g.id), &osm.AirLoopHVAC{})
			for _, z := range g.zones {
				sys.AirLoop.AddBranchForZone(z)
			}
		case osm.PTAC, osm.PTHP:
			for _, z := range g.zones {
				unit := osm.Add(r.model, fmt.Sprintf("%s %s", z.Name(), g.system), &osm.PackagedTerminalUnit{
					Zone:     z,
					HeatPump: g.system == osm.PTHP,
				})
				sys.Terminals = append(sys.Terminals, unit)
			}
		}
		for _, z := range g.zones {
			sys.AddZone(z)
		}
		r.report.HVACSystems++
		logger.Debug("HVAC system instantiated.", "zones", len(g.zones))
	}
}
