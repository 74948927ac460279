package prefstore

import "context"

// Store persists a single locale preference. Implementations return
// ErrNotFound from Read when no preference is stored.
//
// Persistence is advisory: the engine treats every read failure the same
// as absence and never lets a write or clear failure abort a locale
// change.
type Store interface {
	// Read returns the stored locale code.
	Read(ctx context.Context) (string, error)

	// Write persists the locale code, replacing any previous value.
	Write(ctx context.Context, code string) error

	// Clear removes the stored preference, if any.
	Clear(ctx context.Context) error
}
