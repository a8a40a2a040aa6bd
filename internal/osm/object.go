package osm

import "github.com/google/uuid"

// Object is implemented by every node of the graph.
type Object interface {
	Handle() uuid.UUID
	Name() string
	base() *Base
}

// Base carries identity. It is embedded by every object type.
type Base struct {
	handle uuid.UUID
	name   string
}

func (b *Base) Handle() uuid.UUID { return b.handle }
func (b *Base) Name() string      { return b.name }
func (b *Base) base() *Base       { return b }

// Model owns the graph. Objects are kept in creation order.
type Model struct {
	objects  []Object
	byHandle map[uuid.UUID]Object
}

// New returns an empty model.
func New() *Model {
	return &Model{byHandle: make(map[uuid.UUID]Object)}
}

// Add assigns obj a fresh handle and the given name and makes the model its
// owner. Adding the same object twice is a programming error.
func Add[T Object](m *Model, name string, obj T) T {
	b := obj.base()
	if b.handle != uuid.Nil {
		panic("osm: object " + b.name + " already belongs to a model")
	}
	b.handle = uuid.New()
	b.name = name
	m.objects = append(m.objects, obj)
	m.byHandle[b.handle] = obj
	return obj
}

// All returns every object of type T in creation order. T may be a concrete
// pointer type or one of the variant interfaces.
func All[T Object](m *Model) []T {
	var out []T
	for _, o := range m.objects {
		if t, ok := o.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Unique returns the single object of type T, if any. Used for the
// model-wide settings objects.
func Unique[T Object](m *Model) (T, bool) {
	for _, o := range m.objects {
		if t, ok := o.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Objects returns every object in creation order.
func (m *Model) Objects() []Object {
	return m.objects
}

// Lookup finds an object by handle.
func (m *Model) Lookup(h uuid.UUID) (Object, bool) {
	o, ok := m.byHandle[h]
	return o, ok
}

// Len is the number of objects the model owns.
func (m *Model) Len() int {
	return len(m.objects)
}
