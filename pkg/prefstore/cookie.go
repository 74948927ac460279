package prefstore

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Cookie stores the preference in a browser cookie. It is bound to one
// request/response pair; construct a new instance per request.
type Cookie struct {
	w        http.ResponseWriter
	r        *http.Request
	name     string
	path     string
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
}

// CookieOption configures the cookie store.
type CookieOption func(*Cookie)

// WithCookieName overrides the cookie name. Default: "locale".
func WithCookieName(name string) CookieOption {
	return func(c *Cookie) {
		if name != "" {
			c.name = name
		}
	}
}

// WithCookieMaxAge sets how long the preference cookie lives.
// Default: one year.
func WithCookieMaxAge(d time.Duration) CookieOption {
	return func(c *Cookie) {
		c.maxAge = d
	}
}

// WithCookieSecure marks the cookie as HTTPS-only.
func WithCookieSecure(secure bool) CookieOption {
	return func(c *Cookie) {
		c.secure = secure
	}
}

// NewCookie creates a cookie-backed preference store for one request.
func NewCookie(w http.ResponseWriter, r *http.Request, opts ...CookieOption) *Cookie {
	c := &Cookie{
		w:        w,
		r:        r,
		name:     "locale",
		path:     "/",
		maxAge:   365 * 24 * time.Hour,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read returns the cookie value or ErrNotFound.
func (c *Cookie) Read(_ context.Context) (string, error) {
	ck, err := c.r.Cookie(c.name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNotFound
		}
		return "", err
	}
	if ck.Value == "" {
		return "", ErrNotFound
	}
	return ck.Value, nil
}

// Write sets the preference cookie on the response.
func (c *Cookie) Write(_ context.Context, code string) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.name,
		Value:    code,
		Path:     c.path,
		MaxAge:   int(c.maxAge.Seconds()),
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: c.sameSite,
	})
	return nil
}

// Clear expires the preference cookie.
func (c *Cookie) Clear(_ context.Context) error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     c.path,
		MaxAge:   -1,
		Secure:   c.secure,
		HttpOnly: true,
		SameSite: c.sameSite,
	})
	return nil
}

var _ Store = (*Cookie)(nil)
