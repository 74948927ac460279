package catalog

import (
	"context"
	"fmt"
)

// Loader produces the catalog for a locale code. Implementations may
// block on I/O; they must honor ctx cancellation where they do.
type Loader interface {
	Load(ctx context.Context, code string) (Catalog, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, code string) (Catalog, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, code string) (Catalog, error) {
	return f(ctx, code)
}

// Registry maps locale codes to loader functions, making the set of
// supported catalog sources statically enumerable and injectable.
type Registry map[string]LoaderFunc

// Load dispatches to the registered loader for code.
// Returns ErrUnsupportedLocale for codes without a registered loader and
// ErrMalformed when a loader resolves to a nil catalog.
func (r Registry) Load(ctx context.Context, code string) (Catalog, error) {
	fn, ok := r[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, code)
	}
	cat, err := fn(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %q: %w", code, err)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: loader for %q returned nil", ErrMalformed, code)
	}
	return cat, nil
}

// Static returns a Loader serving fixed in-memory catalogs. Useful for
// embedded translations and tests.
func Static(catalogs map[string]Catalog) Loader {
	return LoaderFunc(func(_ context.Context, code string) (Catalog, error) {
		cat, ok := catalogs[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, code)
		}
		return cat, nil
	})
}
