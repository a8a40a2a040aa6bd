package config

import "context"

// Loader is the interface for a format-specific building description loader.
type Loader interface {
	// Load reads the description from the given paths, translates it into the
	// format-agnostic model and validates it. Zones from several files are
	// concatenated in path order.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
