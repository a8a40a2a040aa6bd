package assembler

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/osmforge/internal/builder"
	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/specialistvlad/osmforge/internal/registry"
)

// DefaultTolerance is the linear model tolerance in meters.
const DefaultTolerance = 0.01

// Input is everything one assembly run consumes.
type Input struct {
	Building *config.Model
	Library  *idf.Library
	// DesignDays are rows read from a design day file. Only the 0.4% and
	// 99.6% design days are kept.
	DesignDays []idf.Row
}

// Assembler turns building descriptions into models. It holds no state
// between runs and may be reused.
type Assembler struct {
	tolerance float64
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithTolerance sets the linear tolerance used to inset openings.
func WithTolerance(tol float64) Option {
	return func(a *Assembler) { a.tolerance = tol }
}

// New creates an assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// run is the state of one assembly. Registries, the pending adjacency table
// and the HVAC group table live exactly as long as it does.
type run struct {
	tolerance float64
	model     *osm.Model
	builder   *builder.Builder
	reg       *registry.Set
	report    *Report
	adjacency *adjacencyTable
	groups    *hvacTable
}

// Assemble builds a model from in. The returned error is non-nil only for
// missing required input, in which case no model is returned.
func (a *Assembler) Assemble(ctx context.Context, in Input) (*osm.Model, *Report, error) {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	if in.Building == nil || len(in.Building.Zones) == 0 {
		return nil, nil, fmt.Errorf("%w: the building has no zones", ErrMissingRequiredInput)
	}
	if in.Library == nil {
		return nil, nil, fmt.Errorf("%w: no definition library", ErrMissingRequiredInput)
	}

	model := osm.New()
	reg := registry.NewSet()
	r := &run{
		tolerance: a.tolerance,
		model:     model,
		builder:   builder.New(in.Library, model, reg),
		reg:       reg,
		report:    &Report{},
		adjacency: newAdjacencyTable(),
		groups:    newHVACTable(),
	}

	logger.Info("Assembling model.", "zones", len(in.Building.Zones), "definitions", in.Library.Len())

	r.applySimulation(in.Building.Simulation)
	r.addDesignDays(ctx, in.DesignDays)

	for _, z := range in.Building.Zones {
		r.translateZone(ctxlog.With(ctx, "zone", z.Name), z)
	}

	r.resolveAdjacency(ctx)
	r.instantiateHVAC(ctx)
	r.addShading(in.Building.Shading)
	r.addOutputs(ctx, in.Building.Outputs)

	r.report.Duration = time.Since(start)
	logger.Info("Model assembled.",
		"objects", model.Len(),
		"zones", r.report.Zones,
		"surfaces", r.report.Surfaces,
		"adjacency_links", r.report.AdjacencyLinks,
		"hvac_systems", r.report.HVACSystems,
		"warnings", len(r.report.Warnings),
		"duration", r.report.Duration,
	)
	return model, r.report, nil
}

// record keeps an error already logged by the builder.
func (r *run) record(err error) {
	if err != nil {
		r.report.Warnings = append(r.report.Warnings, err)
	}
}

// warn logs and keeps an error found by the assembler itself.
func (r *run) warn(ctx context.Context, msg string, err error, args ...any) {
	ctxlog.FromContext(ctx).Warn(msg, append(args, "error", err)...)
	r.report.Warnings = append(r.report.Warnings, err)
}

// schedule resolves name, tolerating failure.
func (r *run) schedule(ctx context.Context, name string) osm.Schedule {
	s, err := r.builder.ResolveSchedule(ctx, name)
	r.record(err)
	return s
}

// construction resolves name, tolerating failure.
func (r *run) construction(ctx context.Context, name string) *osm.Construction {
	c, err := r.builder.ResolveConstruction(ctx, name)
	r.record(err)
	return c
}
