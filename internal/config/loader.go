package config

import "context"

// Loader reads settings files of one format. Load applies the values found in
// paths, in order, on top of base and returns the result; fields a file does
// not mention keep their base value.
type Loader interface {
	Load(ctx context.Context, base Settings, paths ...string) (Settings, error)
}
