// Package osm is the simulation-ready object graph the assembler produces.
//
// A Model owns every object. Objects reference each other directly by pointer;
// every object also carries a stable handle so serializers can refer to it
// without relying on names. Families with several variants (materials,
// schedules) are closed sets: the variant interfaces have unexported marker
// methods so only this package can add a variant, and code that switches on
// them can be exhaustive.
package osm
