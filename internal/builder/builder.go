package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/osm"
	"github.com/specialistvlad/osmforge/internal/registry"
)

// Builder materializes library definitions into one model.
type Builder struct {
	lib   *idf.Library
	model *osm.Model
	reg   *registry.Set

	// Synthesized objects stay out of reg so library lookups never see them.
	setpointLimits *osm.ScheduleTypeLimits
	setpoints      map[string]osm.Schedule
}

// New creates a builder writing into model and deduplicating through reg.
func New(lib *idf.Library, model *osm.Model, reg *registry.Set) *Builder {
	return &Builder{lib: lib, model: model, reg: reg, setpoints: map[string]osm.Schedule{}}
}

// Model is the model the builder writes into.
func (b *Builder) Model() *osm.Model {
	return b.model
}

// Registries is the registry set the builder deduplicates through.
func (b *Builder) Registries() *registry.Set {
	return b.reg
}

func (b *Builder) lookup(fam idf.Family, name string) (idf.Row, error) {
	row, ok := b.lib.Lookup(fam, name)
	if !ok {
		return idf.Row{}, fmt.Errorf("%w: %s %q", ErrDefinitionNotFound, fam, name)
	}
	return row, nil
}

// field returns values[i] or "" when the row is shorter.
func field(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return values[i]
}

// requiredFloat parses values[i] and fails on a missing or non-numeric field.
func requiredFloat(row idf.Row, values []string, i int, what string) (float64, error) {
	s := field(values, i)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %s %q is not a number", ErrMalformedDefinition, row.Tag, row.Name(), what, s)
	}
	return v, nil
}

// optionalFloat parses values[i] and reports whether it held a number.
func optionalFloat(values []string, i int) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field(values, i)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func requiredInt(row idf.Row, values []string, i int, what string) (int, error) {
	s := field(values, i)
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %s %q is not an integer", ErrMalformedDefinition, row.Tag, row.Name(), what, s)
	}
	return v, nil
}
