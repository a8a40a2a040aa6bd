// Package hcl provides the HCL implementation of config.Loader for building
// descriptions.
//
// A file may declare `locals` blocks whose attributes are available to the
// rest of the file as `local.<name>`, plus a small set of string, numeric and
// collection functions from go-cty's stdlib (upper, format, concat, ...).
// Locals may reference each other; they are evaluated until no more resolve.
package hcl
