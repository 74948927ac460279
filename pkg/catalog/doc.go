// Package catalog defines the translation catalog tree and the loaders
// that produce one catalog per locale.
//
// A Catalog maps dotted key segments to strings or nested sub-catalogs.
// Lookup walks the segments iteratively and treats anything other than a
// non-empty string leaf as a miss:
//
//	cat := catalog.Catalog{
//		"nav": map[string]any{
//			"home": "Home",
//		},
//	}
//	v, ok := cat.Lookup("nav.home") // "Home", true
//
// # Loaders
//
// Catalogs are acquired through the Loader interface. The package ships
// several implementations:
//
//   - Registry: an explicit locale → loader-function map, so supported
//     sources are statically enumerable and mockable.
//   - Static: fixed in-memory catalogs.
//   - Dir: one JSON/YAML/TOML file per locale in an fs.FS (works with
//     go:embed).
//   - S3: one JSON object per locale in an S3-compatible bucket.
//   - Cached: caching plus singleflight deduplication around any Loader.
//
// A typical production stack:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	loader := catalog.NewCached(catalog.NewDir(sub))
package catalog
