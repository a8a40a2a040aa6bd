package assembler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/specialistvlad/osmforge/internal/builder"
	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
)

func (r *run) applySimulation(sim *config.Simulation) {
	s := sim.WithDefaults()
	osm.Add(r.model, "Simulation Control", &osm.SimulationControl{
		DoZoneSizing:             *s.DoZoneSizing,
		DoSystemSizing:           *s.DoSystemSizing,
		DoPlantSizing:            *s.DoPlantSizing,
		RunForSizingPeriods:      *s.RunForSizingPeriods,
		RunForWeatherFilePeriods: *s.RunForWeatherPeriods,
		SolarDistribution:        s.SolarDistribution,
	})
	osm.Add(r.model, "Shadow Calculation", &osm.ShadowCalculation{
		CalculationMethod:    s.ShadowMethod,
		CalculationFrequency: s.ShadowFrequency,
		MaximumFigures:       s.ShadowMaxFigures,
	})
	osm.Add(r.model, "Timestep", &osm.Timestep{PerHour: s.TimestepsPerHour})
	osm.Add(r.model, "Run Period 1", &osm.RunPeriod{
		Begin: osm.Date{Month: time.Month(s.StartMonth), Day: s.StartDay},
		End:   osm.Date{Month: time.Month(s.EndMonth), Day: s.EndDay},
	})
	osm.Add(r.model, "Building", &osm.Building{NorthAxis: s.NorthAngle})
}

// addDesignDays keeps the 0.4% cooling and 99.6% heating design days.
func (r *run) addDesignDays(ctx context.Context, rows []idf.Row) {
	for _, row := range rows {
		if !row.Is("SizingPeriod:DesignDay") {
			continue
		}
		name := row.Name()
		if !strings.Contains(name, ".4%") && !strings.Contains(name, "99.6%") {
			continue
		}
		osm.Add(r.model, name, &osm.DesignDay{Fields: append([]string(nil), row.Fields[1:]...)})
		r.report.DesignDays++
	}
	ctxlog.FromContext(ctx).Debug("Design days added.", "count", r.report.DesignDays, "rows", len(rows))
}

// addShading puts every context surface into one group. Loop j of surface i
// is named shdSurface_<i>_<j>.
func (r *run) addShading(surfaces []*config.ShadingSurface) {
	if len(surfaces) == 0 {
		return
	}
	group := osm.Add(r.model, "Shading Surface Group 1", &osm.ShadingSurfaceGroup{})
	for i, s := range surfaces {
		for j, l := range s.Loops {
			osm.NewShadingSurface(r.model, fmt.Sprintf("shdSurface_%d_%d", i, j), group, toGeom(l))
		}
	}
}

// addOutputs turns raw output directives into report requests.
func (r *run) addOutputs(ctx context.Context, directives []string) {
	for _, d := range directives {
		fields := strings.Split(strings.TrimSuffix(strings.TrimSpace(d), ";"), ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		switch strings.ToLower(fields[0]) {
		case "output:variable":
			if len(fields) != 4 {
				r.warnDirective(ctx, d, builder.ErrMalformedDefinition)
				continue
			}
			osm.Add(r.model, fields[2], &osm.OutputVariable{Key: fields[1], Variable: fields[2], Frequency: fields[3]})
		case "output:meter":
			if len(fields) != 3 {
				r.warnDirective(ctx, d, builder.ErrMalformedDefinition)
				continue
			}
			osm.Add(r.model, fields[1], &osm.OutputMeter{Frequency: fields[2]})
		case "outputcontrol:table:style":
			// The exchange file always gets its own table style.
		default:
			r.warnDirective(ctx, d, builder.ErrUnsupportedType)
		}
	}
}

func (r *run) warnDirective(ctx context.Context, directive string, kind error) {
	err := fmt.Errorf("%w: output directive %q", kind, directive)
	r.warn(ctx, "Output directive skipped.", err)
}
