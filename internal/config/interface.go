package config

import "context"

// Loader is the interface for a format-specific front-end. It reads an
// application description from the given paths and translates it into the
// format-agnostic Model. A loader performs no cross-referencing between
// declarations; that is the verifier's job.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
