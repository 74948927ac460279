package middlewares

import (
	"net/http"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/prefstore"
)

// SwitchLocale returns an http.Handler that changes the engine locale
// from the "locale" form or query parameter, persists the committed
// locale in the preference cookie, and redirects back to the Referer
// (or "/"). Invalid and unsupported codes are absorbed by the engine;
// the handler never errors.
func SwitchLocale(eng *engine.Engine, opts ...LocaleOption) http.Handler {
	cfg := &LocaleConfig{CookieName: "locale"}
	for _, opt := range opts {
		opt(cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.FormValue("locale")
		eng.ChangeLocale(r.Context(), code)

		// Persist whatever the engine actually committed, which may be
		// the default locale when the requested one was unavailable.
		store := prefstore.NewCookie(w, r, prefstore.WithCookieName(cfg.CookieName))
		_ = store.Write(r.Context(), eng.ActiveLocale())

		target := r.Referer()
		if target == "" {
			target = "/"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}
