// Package middlewares integrates the translation engine with net/http
// servers.
//
// Locale resolves each request's display locale from the preference
// cookie, then the Accept-Language header, then the engine's active
// locale, and stores it in the request context:
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Locale(eng))
//
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		code, _ := middlewares.LocaleFromContext(r.Context())
//		...
//	})
//
// SwitchLocale is a drop-in handler for a locale toggle: it changes the
// engine locale, persists the choice in a cookie, and redirects back:
//
//	r.Post("/locale", middlewares.SwitchLocale(eng).ServeHTTP)
package middlewares
