// Package registry provides the name-keyed stores that guarantee each named
// definition is built at most once per assembly run.
//
// Names are compared case-insensitively after trimming, matching how the
// definition library resolves them. Materials, constructions, schedules,
// schedule type limits and space types each get their own namespace, so an
// object named "Office" in one family never shadows another family's.
package registry
