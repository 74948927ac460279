// Package locale provides locale code validation, the closed set of
// supported locales, and initial-locale detection.
//
// A locale code is always two lowercase ASCII letters ("en", "es").
// Everything else is invalid and never enters the engine.
//
// # Supported Set
//
// The supported locales form a closed Set built at construction time,
// with the default locale always a member and listed first:
//
//	set := locale.MustNewSet("en", "es", "de")
//	set.Contains("es") // true
//	set.Default()      // "en"
//
// # Detection
//
// Detect picks the initial locale from a stored preference, an
// environment locale signal, and the default, in that order:
//
//	code := locale.Detect(stored, locale.EnvironmentSignal(), set)
//
// The signal may be a BCP-47 tag ("es-MX") or a POSIX locale string
// ("es_MX.UTF-8"); only its base language is consulted.
//
// # HTTP
//
// MatchAcceptLanguage resolves an Accept-Language header against the
// supported set, honoring quality values:
//
//	code, ok := locale.MatchAcceptLanguage(r.Header.Get("Accept-Language"), set)
package locale
