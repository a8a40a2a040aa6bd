/*
Package builder turns named definition rows into osm objects.

A Builder resolves schedules, schedule type limits, materials and
constructions by name against an idf.Library. Every resolution goes through
the run's registry.Set first, so a name is built at most once and every later
request returns the same instance.

Dispatch is on the row's tag, case-insensitively:

  - Schedules: Schedule:Constant, Schedule:Day:Interval, Schedule:Week:Daily
    and Schedule:Year. Week and Year schedules resolve their parts
    recursively through the same Builder.
  - Materials: Material, Material:NoMass, Material:AirGap,
    WindowMaterial:SimpleGlazingSystem, WindowMaterial:Glazing and
    WindowMaterial:Gas.

Any other tag yields no object and an error wrapping ErrUnsupportedType. The
builder never aborts the caller: resolution failures are returned as errors
and it is up to the caller to decide whether a missing reference is fatal.
*/
package builder
