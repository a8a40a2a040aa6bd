package registry

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/osmforge/internal/osm"
)

// Registry maps normalized names to built objects of one family.
type Registry[T any] struct {
	family string
	items  map[string]T
	order  []string
}

// New creates an empty registry. family is only used in panic messages.
func New[T any](family string) *Registry[T] {
	return &Registry[T]{family: family, items: make(map[string]T)}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the object registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	v, ok := r.items[normalize(name)]
	return v, ok
}

// Insert registers v under name. Registering a name twice is a programming
// error: callers must Lookup first.
func (r *Registry[T]) Insert(name string, v T) {
	key := normalize(name)
	if _, exists := r.items[key]; exists {
		panic(fmt.Sprintf("%s with name '%s' already registered", r.family, name))
	}
	r.items[key] = v
	r.order = append(r.order, name)
}

// GetOrBuild returns the object registered under name, or calls build and
// registers its result. A failed build registers nothing, so a later request
// for the same name tries again.
func (r *Registry[T]) GetOrBuild(name string, build func() (T, error)) (T, error) {
	if v, ok := r.Lookup(name); ok {
		return v, nil
	}
	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	// build may have registered the name itself while recursing.
	if existing, ok := r.Lookup(name); ok {
		return existing, nil
	}
	r.Insert(name, v)
	return v, nil
}

// Len is the number of registered names.
func (r *Registry[T]) Len() int {
	return len(r.items)
}

// Names returns the registered names in insertion order, as first spelled.
func (r *Registry[T]) Names() []string {
	return append([]string(nil), r.order...)
}

// Set holds the registries for one assembly run.
type Set struct {
	Materials     *Registry[osm.Material]
	Constructions *Registry[*osm.Construction]
	Schedules     *Registry[osm.Schedule]
	TypeLimits    *Registry[*osm.ScheduleTypeLimits]
	SpaceTypes    *Registry[*osm.SpaceType]
}

// NewSet creates an empty set of registries.
func NewSet() *Set {
	return &Set{
		Materials:     New[osm.Material]("material"),
		Constructions: New[*osm.Construction]("construction"),
		Schedules:     New[osm.Schedule]("schedule"),
		TypeLimits:    New[*osm.ScheduleTypeLimits]("schedule type limits"),
		SpaceTypes:    New[*osm.SpaceType]("space type"),
	}
}
