// Package prefstore persists a single locale preference across sessions.
//
// The Store interface is deliberately tiny: read one code, write one
// code, clear it. Absence is signaled with ErrNotFound. The engine owns
// the fail-soft semantics: a failing store degrades to "no preference"
// and never blocks a locale change.
//
// Implementations:
//
//   - Memory: in-process, for CLI sessions and tests.
//   - Cookie: one browser cookie, bound to a request/response pair.
//   - Redis: one string key, optionally with a TTL.
//   - Postgres: one row per subject in a locale_preferences table.
package prefstore
