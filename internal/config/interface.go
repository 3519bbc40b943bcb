package config

import "context"

// Loader defines the contract for any component that can load graph files
// and produce a format-agnostic Model.
type Loader interface {
	// Load reads every file matched by the given paths (files or
	// directories) and merges them into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)

	// Extensions lists the file extensions the loader understands.
	Extensions() []string
}

// Chain runs each loader over the same paths and merges the results in
// order. A mode declared by two loaders must agree.
func Chain(ctx context.Context, paths []string, loaders ...Loader) (*Model, error) {
	model := &Model{}
	for _, l := range loaders {
		m, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(m); err != nil {
			return nil, err
		}
	}
	return model, nil
}
