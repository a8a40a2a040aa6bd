// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
)

func (l *Loader) merge(ctx context.Context, model *config.Model, root *fileRoot) error {
	for _, z := range root.Zones {
		zone, err := translateZone(ctx, z)
		if err != nil {
			return err
		}
		model.Zones = append(model.Zones, zone)
	}
	for i, s := range root.Shading {
		loops, err := translateLoops(s.Loops)
		if err != nil {
			return fmt.Errorf("shading block %d: %w", i, err)
		}
		model.Shading = append(model.Shading, &config.ShadingSurface{Loops: loops})
	}
	model.Outputs = append(model.Outputs, root.Outputs...)
	if root.Simulation != nil {
		model.Simulation = translateSimulation(root.Simulation)
	}
	return nil
}

func translateZone(ctx context.Context, z *zoneBlock) (*config.Zone, error) {
	logger := ctxlog.FromContext(ctx).With("zone", z.Name)
	logger.Debug("Translating HCL zone to internal config model.", "surfaces", len(z.Surfaces))

	zone := &config.Zone{
		Name:                      z.Name,
		BuildingProgram:           z.BuildingProgram,
		ZoneProgram:               z.ZoneProgram,
		FloorArea:                 z.FloorArea,
		PeoplePerArea:             z.PeoplePerArea,
		LightingDensityPerArea:    z.LightingDensityPerArea,
		EquipmentLoadPerArea:      z.EquipmentLoadPerArea,
		InfiltrationRatePerArea:   z.InfiltrationRatePerArea,
		VentilationPerPerson:      z.VentilationPerPerson,
		VentilationPerArea:        z.VentilationPerArea,
		DaylightThreshold:         z.DaylightThreshold,
		HeatingSetpoint:           z.HeatingSetpoint,
		CoolingSetpoint:           z.CoolingSetpoint,
		HeatingSetpointSchedule:   z.HeatingSetpointSchedule,
		CoolingSetpointSchedule:   z.CoolingSetpointSchedule,
		OccupancySchedule:         z.OccupancySchedule,
		OccupancyActivitySchedule: z.OccupancyActivitySchedule,
		LightingSchedule:          z.LightingSchedule,
		EquipmentSchedule:         z.EquipmentSchedule,
		InfiltrationSchedule:      z.InfiltrationSchedule,
		HVACGroup:                 z.HVACGroup,
		HVACSystem:                z.HVACSystem,
	}
	for _, s := range z.Surfaces {
		loops, err := translateLoops(s.Loops)
		if err != nil {
			return nil, fmt.Errorf("zone '%s', surface '%s': %w", z.Name, s.Name, err)
		}
		surface := &config.Surface{
			Name:         s.Name,
			Type:         s.Type,
			Boundary:     s.Boundary,
			Partner:      s.Partner,
			Construction: s.Construction,
			SunExposed:   s.SunExposed,
			WindExposed:  s.WindExposed,
			Loops:        loops,
		}
		for _, o := range s.Openings {
			loops, err := translateLoops(o.Loops)
			if err != nil {
				return nil, fmt.Errorf("zone '%s', opening '%s': %w", z.Name, o.Name, err)
			}
			surface.Openings = append(surface.Openings, &config.Opening{
				Name:         o.Name,
				Type:         o.Type,
				Construction: o.Construction,
				Loops:        loops,
			})
		}
		zone.Surfaces = append(zone.Surfaces, surface)
	}
	return zone, nil
}

// translateLoops checks that every vertex has exactly three coordinates.
func translateLoops(raw rawLoops) ([]config.Loop, error) {
	loops := make([]config.Loop, 0, len(raw))
	for i, r := range raw {
		loop := make(config.Loop, 0, len(r))
		for j, p := range r {
			if len(p) != 3 {
				return nil, fmt.Errorf("loop %d vertex %d has %d coordinates, want 3", i, j, len(p))
			}
			loop = append(loop, config.Point{p[0], p[1], p[2]})
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

func translateSimulation(s *simulationBlock) *config.Simulation {
	return &config.Simulation{
		TimestepsPerHour:     s.TimestepsPerHour,
		ShadowMethod:         s.ShadowMethod,
		ShadowFrequency:      s.ShadowFrequency,
		ShadowMaxFigures:     s.ShadowMaxFigures,
		SolarDistribution:    s.SolarDistribution,
		DoZoneSizing:         s.DoZoneSizing,
		DoSystemSizing:       s.DoSystemSizing,
		DoPlantSizing:        s.DoPlantSizing,
		RunForSizingPeriods:  s.RunForSizingPeriods,
		RunForWeatherPeriods: s.RunForWeatherPeriods,
		StartMonth:           s.StartMonth,
		StartDay:             s.StartDay,
		EndMonth:             s.EndMonth,
		EndDay:               s.EndDay,
		NorthAngle:           s.NorthAngle,
	}
}
