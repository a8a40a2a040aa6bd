/*
Package assembler translates a building description into a fully linked osm
model.

Assembly is a single sequential pass followed by two resolution steps:

 1. Zones are translated in the order given. For each zone the assembler
    creates the space and its space type, the default schedule set, the
    loads, the thermal zone and its thermostat, then the surfaces and their
    openings. Schedules, materials and constructions are resolved through a
    builder.Builder, so the first zone that references a shared name builds
    it and every later zone reuses it.
 2. Adjacency: surfaces with a "Surface" boundary record their declared
    partner by name while zones are translated. Once every zone exists the
    recorded pairs are linked both ways.
 3. HVAC grouping: every thermal zone joins the group named by its HVAC group
    id. One system is instantiated per group and every member zone is
    attached to it.

Unresolvable references never abort assembly. They are logged, collected on
the Report and the affected object is left without the reference. Only
missing required input, such as an empty zone list, is fatal.
*/
package assembler
