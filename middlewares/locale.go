package middlewares

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/locale"
)

type localeCtxKey struct{}

// LocaleConfig configures the Locale middleware.
type LocaleConfig struct {
	// CookieName is the preference cookie consulted first.
	// Default: "locale".
	CookieName string
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleCookieName overrides the preference cookie name.
func WithLocaleCookieName(name string) LocaleOption {
	return func(cfg *LocaleConfig) {
		if name != "" {
			cfg.CookieName = name
		}
	}
}

// Locale returns net/http middleware that resolves the request's display
// locale and stores it in the request context. Sources are tried in
// order: the preference cookie, the Accept-Language header, the engine's
// active locale. Only members of the engine's supported set are
// accepted.
func Locale(eng *engine.Engine, opts ...LocaleOption) func(http.Handler) http.Handler {
	cfg := &LocaleConfig{CookieName: "locale"}
	for _, opt := range opts {
		opt(cfg)
	}

	set := eng.Supported()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := fromCookie(r, cfg.CookieName, set)
			if code == "" {
				if m, ok := locale.MatchAcceptLanguage(r.Header.Get("Accept-Language"), set); ok {
					code = m
				}
			}
			if code == "" {
				code = eng.ActiveLocale()
			}

			ctx := context.WithValue(r.Context(), localeCtxKey{}, code)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the locale resolved by the Locale
// middleware. Returns ("", false) when the middleware is not installed.
func LocaleFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(localeCtxKey{}).(string)
	return code, ok
}

// fromCookie reads and validates the preference cookie.
func fromCookie(r *http.Request, name string, set locale.Set) string {
	ck, err := r.Cookie(name)
	if err != nil || ck.Value == "" {
		return ""
	}
	if !locale.IsValid(ck.Value) || !set.Contains(ck.Value) {
		return ""
	}
	return ck.Value
}
