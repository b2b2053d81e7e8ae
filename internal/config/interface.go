package config

import "context"

// Loader is the interface for a format-specific configuration loader. A
// loader reads one or more files or directories and translates them into
// the format-agnostic model.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
