// Package config defines the format-agnostic building description the
// assembler consumes, along with the Loader interface that format-specific
// packages implement.
//
// The `config.Model` is the single source of truth for the `assembler`
// package. Concrete loaders for HCL and YAML live in separate packages; both
// produce the same Model and run the same Validate before returning it.
package config
