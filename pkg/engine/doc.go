// Package engine orchestrates locale detection, catalog acquisition,
// preference persistence, and key resolution into one state machine
// built for UI layers that must never crash or block on a lookup.
//
// # Lifecycle
//
// An engine is created once per session, started, and then shared by all
// consumers:
//
//	eng, err := engine.New(
//		engine.WithDefaultLocale("en"),
//		engine.WithSupportedLocales("es", "de"),
//		engine.WithLoader(catalog.NewDir(translationsFS)),
//		engine.WithPreferenceStore(prefstore.NewMemory()),
//		engine.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	eng.Start(ctx)
//
//	eng.T("nav.home")               // resolved string, or the key itself
//	eng.ChangeLocale(ctx, "es")     // switch + persist, never fails
//	eng.ActiveLocale()              // "es"
//
// Start moves Uninitialized → Loading → Ready. When even the default
// catalog cannot be loaded the engine enters Degraded and keeps serving:
// every key resolves to itself.
//
// # Resolution
//
// T walks the dotted key through the active catalog, then the default
// catalog, then returns the raw key. The default catalog is loaded once
// and stays resident as the terminal fallback. Only a non-empty string
// leaf is a hit; missing segments, non-string leaves, and empty strings
// all fall through.
//
// # Failure semantics
//
// Every public operation is total. Preference storage is advisory:
// failures are logged, never surfaced. A failed locale switch retains
// the previous locale and catalog. The only user-visible failure modes
// are a raw key instead of translated text and a locale switch that
// silently does not take effect.
//
// # Concurrency
//
// Committed state lives behind an atomic pointer; T always observes a
// fully committed (locale, catalog) pair and never a torn state.
// Concurrent ChangeLocale calls are not serialized: the load that
// finishes last wins regardless of call order. There is no request
// queue, no generation counter, and no cancellation of in-flight loads.
package engine
