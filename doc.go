// Package lingo resolves symbolic content keys to localized strings for
// UI layers that must never crash or block on a lookup.
//
// The library is built around a small set of composable packages:
//
//   - pkg/engine: the translation resolution engine - locale detection,
//     catalog acquisition, persisted preferences, and the key-resolution
//     fallback chain in one state machine.
//   - pkg/catalog: the nested translation tree and its loaders (embedded
//     files, directories, S3, caching).
//   - pkg/locale: locale code validation, the supported set, and
//     initial-locale detection.
//   - pkg/prefstore: persistence backends for the user's locale choice
//     (memory, cookie, Redis, Postgres).
//   - middlewares: net/http integration.
//
// # Quick Start
//
// Embed one catalog file per locale and start the engine:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	eng, err := lingo.New(
//		lingo.WithDefaultLocale("en"),
//		lingo.WithSupportedLocales("es", "de"),
//		lingo.WithLoader(catalog.NewCached(catalog.NewDir(sub))),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	eng.Start(ctx)
//
//	eng.T("nav.home")           // "Home"
//	eng.ChangeLocale(ctx, "es")
//	eng.T("nav.home")           // "Inicio"
//	eng.T("not.translated")     // "not.translated"
//
// Every operation is total: missing keys resolve to themselves, failed
// locale switches keep the previous locale, and a missing default
// catalog degrades the engine to identity resolution instead of
// failing. Diagnostics go to the configured slog logger.
//
// This root package only re-exports the engine API; applications with
// more specific needs import the sub-packages directly.
package lingo
