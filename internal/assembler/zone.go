package assembler

import (
	"context"
	"strings"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// translateZone runs the per-zone steps in their fixed order. The order
// decides which zone builds a shared definition first.
func (r *run) translateZone(ctx context.Context, z *config.Zone) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translating zone.", "surfaces", len(z.Surfaces))

	space := osm.Add(r.model, z.Name, &osm.Space{FloorArea: floorArea(z)})
	space.SpaceType = r.spaceType(z)

	r.setDefaultSchedules(ctx, z, space)
	r.setLoads(ctx, z, space)

	tz := osm.Add(r.model, z.Name, &osm.ThermalZone{Space: space})
	space.ThermalZone = tz
	r.setThermostat(ctx, z, space, tz)

	r.recordHVAC(ctx, z, tz)

	for _, s := range z.Surfaces {
		built := r.translateSurface(ctxlog.With(ctx, "surface", s.Name), s, space)
		r.translateFenestration(ctxlog.With(ctx, "surface", s.Name), s, built)
	}
	r.report.Zones++
}

// spaceType shares one SpaceType per building and zone program pair.
func (r *run) spaceType(z *config.Zone) *osm.SpaceType {
	key := z.BuildingProgram + ":" + z.ZoneProgram
	st, _ := r.reg.SpaceTypes.GetOrBuild(key, func() (*osm.SpaceType, error) {
		return osm.Add(r.model, key, &osm.SpaceType{
			BuildingProgram: z.BuildingProgram,
			ZoneProgram:     z.ZoneProgram,
		}), nil
	})
	return st
}

// floorArea is the declared area or the summed area of the zone's floors.
func floorArea(z *config.Zone) float64 {
	if z.FloorArea > 0 {
		return z.FloorArea
	}
	var area float64
	for _, s := range z.Surfaces {
		if parseSurfaceType(s.Type) != osm.Floor {
			continue
		}
		for _, l := range s.Loops {
			area += toGeom(l).Area()
		}
	}
	return area
}

func (r *run) setDefaultSchedules(ctx context.Context, z *config.Zone, space *osm.Space) {
	set := &osm.DefaultScheduleSet{}
	set.ElectricEquipment = r.schedule(ctx, z.EquipmentSchedule)
	set.HoursOfOperation = r.schedule(ctx, z.OccupancySchedule)
	set.Infiltration = r.schedule(ctx, z.InfiltrationSchedule)
	set.Lighting = r.schedule(ctx, z.LightingSchedule)
	set.PeopleActivity = r.schedule(ctx, z.OccupancyActivitySchedule)
	set.People = set.HoursOfOperation
	space.DefaultSchedules = osm.Add(r.model, z.Name+"_DefaultScheduleSet", set)
}

func (r *run) setLoads(ctx context.Context, z *config.Zone, space *osm.Space) {
	area := space.FloorArea

	space.Infiltration = osm.Add(r.model, z.Name+"_Infiltration", &osm.SpaceInfiltration{
		Space:            space,
		Schedule:         r.schedule(ctx, z.InfiltrationSchedule),
		FlowPerFloorArea: z.InfiltrationRatePerArea,
	})

	peopleDef := osm.Add(r.model, z.Name+"_PeopleDefinition", &osm.PeopleDefinition{
		PeoplePerFloorArea: z.PeoplePerArea,
		NumberOfPeople:     z.PeoplePerArea * area,
	})
	space.People = osm.Add(r.model, z.Name+"_PeopleObject", &osm.People{
		Definition: peopleDef,
		Space:      space,
		Activity:   r.schedule(ctx, z.OccupancyActivitySchedule),
		Schedule:   r.schedule(ctx, z.OccupancySchedule),
	})

	lightsDef := &osm.LightsDefinition{
		Method:            osm.WattsPerArea,
		WattsPerFloorArea: z.LightingDensityPerArea,
		DesignLevel:       z.LightingDensityPerArea * area,
	}
	if z.DaylightThreshold != nil {
		lightsDef.Method = osm.LightingLevel
		lightsDef.LightingLevel = *z.DaylightThreshold
		lightsDef.DesignLevel = *z.DaylightThreshold
	}
	space.Lights = osm.Add(r.model, z.Name+"_LightsObject", &osm.Lights{
		Definition: osm.Add(r.model, z.Name+"_LightsDefinition", lightsDef),
		Space:      space,
		Schedule:   r.schedule(ctx, z.LightingSchedule),
	})

	equipDef := osm.Add(r.model, z.Name+"_ElectricEquipmentDefinition", &osm.ElectricEquipmentDefinition{
		WattsPerFloorArea: z.EquipmentLoadPerArea,
	})
	space.ElectricEquipment = osm.Add(r.model, z.Name+"_ElectricEquipmentObject", &osm.ElectricEquipment{
		Definition:        equipDef,
		Space:             space,
		Schedule:          r.schedule(ctx, z.EquipmentSchedule),
		EndUseSubcategory: "ElectricEquipment",
	})

	space.OutdoorAir = osm.Add(r.model, z.Name+"_DSOA", &osm.DesignSpecificationOutdoorAir{
		Method:       "Sum",
		PerPerson:    z.VentilationPerPerson,
		PerFloorArea: z.VentilationPerArea,
	})
}

// setThermostat attaches the declared setpoint schedules as the baseline and
// replaces the active ones with full-day overrides where a literal is given.
func (r *run) setThermostat(ctx context.Context, z *config.Zone, space *osm.Space, tz *osm.ThermalZone) {
	th := &osm.ThermostatSetpointDualSetpoint{
		BaselineHeating: r.schedule(ctx, z.HeatingSetpointSchedule),
		BaselineCooling: r.schedule(ctx, z.CoolingSetpointSchedule),
	}
	th.Heating, th.Cooling = th.BaselineHeating, th.BaselineCooling

	if z.HeatingSetpoint != nil {
		s, err := r.builder.SetpointSchedule(ctx, "Heating", *z.HeatingSetpoint)
		r.record(err)
		if s != nil {
			th.Heating = s
		}
	}
	if z.CoolingSetpoint != nil {
		s, err := r.builder.SetpointSchedule(ctx, "Cooling", *z.CoolingSetpoint)
		r.record(err)
		if s != nil {
			th.Cooling = s
		}
	}
	tz.Thermostat = osm.Add(r.model, "dualSetPtThermostat"+space.Name(), th)
}

func parseSurfaceType(s string) osm.SurfaceType {
	switch strings.ToLower(s) {
	case "floor":
		return osm.Floor
	case "roof", "ceiling", "roofceiling":
		return osm.RoofCeiling
	default:
		return osm.Wall
	}
}

func parseBoundary(s string) osm.Boundary {
	switch strings.ToLower(s) {
	case "ground":
		return osm.Ground
	case "surface":
		return osm.Adjacent
	case "adiabatic":
		return osm.Adiabatic
	default:
		return osm.Outdoors
	}
}

func parseSubSurfaceType(s string) osm.SubSurfaceType {
	switch strings.ToLower(strings.ReplaceAll(s, " ", "")) {
	case "operablewindow":
		return osm.OperableWindow
	case "door":
		return osm.Door
	case "glassdoor":
		return osm.GlassDoor
	case "skylight":
		return osm.Skylight
	default:
		return osm.FixedWindow
	}
}
