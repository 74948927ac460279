package engine_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingo/pkg/catalog"
	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/prefstore"
)

// fakeStore is a scriptable preference store recording all calls.
type fakeStore struct {
	mu         sync.Mutex
	code       string
	hasCode    bool
	readErr    error
	writeErr   error
	clearErr   error
	writes     []string
	clearCalls int
}

func (s *fakeStore) Read(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return "", s.readErr
	}
	if !s.hasCode {
		return "", prefstore.ErrNotFound
	}
	return s.code, nil
}

func (s *fakeStore) Write(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, code)
	s.code = code
	s.hasCode = true
	return nil
}

func (s *fakeStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.code = ""
	s.hasCode = false
	return nil
}

func testLoader() catalog.Loader {
	return catalog.Static(map[string]catalog.Catalog{
		"en": {
			"greeting": "Hello",
			"nav": map[string]any{
				"home": "Home",
				"only": "English only",
			},
		},
		"es": {
			"greeting": "Hola",
			"nav": map[string]any{
				"home": "Inicio",
			},
		},
	})
}

func newStarted(t *testing.T, opts ...engine.Option) *engine.Engine {
	t.Helper()
	base := []engine.Option{
		engine.WithDefaultLocale("en"),
		engine.WithSupportedLocales("es"),
		engine.WithLoader(testLoader()),
		engine.WithEnvironmentSignal(func() string { return "" }),
	}
	eng, err := engine.New(append(base, opts...)...)
	require.NoError(t, err)
	eng.Start(context.Background())
	return eng
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires loader", func(t *testing.T) {
		t.Parallel()
		_, err := engine.New()
		require.ErrorIs(t, err, engine.ErrNilLoader)
	})

	t.Run("rejects invalid default locale", func(t *testing.T) {
		t.Parallel()
		_, err := engine.New(
			engine.WithLoader(testLoader()),
			engine.WithDefaultLocale("English"),
		)
		require.Error(t, err)
	})

	t.Run("starts uninitialized", func(t *testing.T) {
		t.Parallel()
		eng, err := engine.New(engine.WithLoader(testLoader()))
		require.NoError(t, err)
		assert.Equal(t, engine.StatusUninitialized, eng.Status())
	})
}

func TestStart(t *testing.T) {
	t.Parallel()

	t.Run("ready with default locale", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		assert.Equal(t, engine.StatusReady, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
	})

	t.Run("environment signal picks supported locale", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t, engine.WithEnvironmentSignal(func() string { return "es-MX" }))
		assert.Equal(t, "es", eng.ActiveLocale())
		assert.Equal(t, "Hola", eng.T("greeting"))
	})

	t.Run("stored preference wins over signal", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{code: "en", hasCode: true}
		eng := newStarted(t,
			engine.WithPreferenceStore(store),
			engine.WithEnvironmentSignal(func() string { return "es-ES" }),
		)
		assert.Equal(t, "en", eng.ActiveLocale())
	})

	t.Run("invalid stored preference is cleared", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{code: "klingon", hasCode: true}
		eng := newStarted(t, engine.WithPreferenceStore(store))
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, 1, store.clearCalls)
	})

	t.Run("unsupported stored preference is cleared", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{code: "fr", hasCode: true}
		eng := newStarted(t, engine.WithPreferenceStore(store))
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, 1, store.clearCalls)
	})

	t.Run("store read failure treated as absent", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{readErr: errors.New("disk on fire")}
		eng := newStarted(t, engine.WithPreferenceStore(store))
		assert.Equal(t, engine.StatusReady, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
	})

	t.Run("panicking signal treated as no signal", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t, engine.WithEnvironmentSignal(func() string {
			panic("no environment here")
		}))
		assert.Equal(t, engine.StatusReady, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
	})

	t.Run("initial locale catalog failure falls back to default", func(t *testing.T) {
		t.Parallel()
		loader := catalog.Static(map[string]catalog.Catalog{
			"en": {"greeting": "Hello"},
		})
		eng, err := engine.New(
			engine.WithDefaultLocale("en"),
			engine.WithSupportedLocales("es"),
			engine.WithLoader(loader),
			engine.WithEnvironmentSignal(func() string { return "es" }),
		)
		require.NoError(t, err)
		eng.Start(context.Background())
		assert.Equal(t, engine.StatusReady, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, "Hello", eng.T("greeting"))
	})

	t.Run("degraded when default catalog fails", func(t *testing.T) {
		t.Parallel()
		loader := catalog.LoaderFunc(func(_ context.Context, _ string) (catalog.Catalog, error) {
			return nil, errors.New("network down")
		})
		eng, err := engine.New(
			engine.WithDefaultLocale("en"),
			engine.WithSupportedLocales("es"),
			engine.WithLoader(loader),
			engine.WithEnvironmentSignal(func() string { return "" }),
		)
		require.NoError(t, err)
		eng.Start(context.Background())
		assert.Equal(t, engine.StatusDegraded, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, "any.key", eng.T("any.key"))
	})

	t.Run("double start is a no-op", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		eng.ChangeLocale(context.Background(), "es")
		eng.Start(context.Background())
		assert.Equal(t, "es", eng.ActiveLocale())
		assert.Equal(t, engine.StatusReady, eng.Status())
	})
}

func TestChangeLocale(t *testing.T) {
	t.Parallel()

	t.Run("switches locale and catalog together", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		eng.ChangeLocale(context.Background(), "es")
		assert.Equal(t, "es", eng.ActiveLocale())
		assert.Equal(t, "Hola", eng.T("greeting"))
		assert.Equal(t, engine.StatusReady, eng.Status())
	})

	t.Run("persists committed locale", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{}
		eng := newStarted(t, engine.WithPreferenceStore(store))
		eng.ChangeLocale(context.Background(), "es")
		assert.Equal(t, []string{"es"}, store.writes)
	})

	t.Run("store write failure does not abort the change", func(t *testing.T) {
		t.Parallel()
		store := &fakeStore{writeErr: errors.New("quota exceeded")}
		eng := newStarted(t, engine.WithPreferenceStore(store))
		eng.ChangeLocale(context.Background(), "es")
		assert.Equal(t, "es", eng.ActiveLocale())
		assert.Equal(t, "Hola", eng.T("greeting"))
	})

	t.Run("idempotent for the same locale", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		eng.ChangeLocale(context.Background(), "es")
		before := eng.T("greeting")
		eng.ChangeLocale(context.Background(), "es")
		assert.Equal(t, "es", eng.ActiveLocale())
		assert.Equal(t, before, eng.T("greeting"))
	})

	t.Run("round-trip restores original catalog", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		original := eng.T("greeting")
		eng.ChangeLocale(context.Background(), "es")
		eng.ChangeLocale(context.Background(), "en")
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, original, eng.T("greeting"))
	})

	t.Run("invalid format rejected without transition", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		eng.ChangeLocale(context.Background(), "Español")
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, engine.StatusReady, eng.Status())
	})

	t.Run("unsupported locale substitutes default", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		eng.ChangeLocale(context.Background(), "es")
		eng.ChangeLocale(context.Background(), "fr")
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, "Hello", eng.T("greeting"))
	})

	t.Run("ignored in degraded mode", func(t *testing.T) {
		t.Parallel()
		loader := catalog.LoaderFunc(func(_ context.Context, _ string) (catalog.Catalog, error) {
			return nil, errors.New("still down")
		})
		eng, err := engine.New(
			engine.WithDefaultLocale("en"),
			engine.WithSupportedLocales("es"),
			engine.WithLoader(loader),
			engine.WithEnvironmentSignal(func() string { return "" }),
		)
		require.NoError(t, err)
		eng.Start(context.Background())
		eng.ChangeLocale(context.Background(), "es")
		assert.Equal(t, engine.StatusDegraded, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
	})

	t.Run("failed switch retains previous state", func(t *testing.T) {
		t.Parallel()
		var fail bool
		loader := catalog.LoaderFunc(func(_ context.Context, code string) (catalog.Catalog, error) {
			if fail && code != "en" {
				return nil, errors.New("source vanished")
			}
			if code == "es" {
				return catalog.Catalog{"greeting": "Hola"}, nil
			}
			return catalog.Catalog{"greeting": "Hello"}, nil
		})
		eng, err := engine.New(
			engine.WithDefaultLocale("en"),
			engine.WithSupportedLocales("es"),
			engine.WithLoader(loader),
			engine.WithEnvironmentSignal(func() string { return "" }),
		)
		require.NoError(t, err)
		eng.Start(context.Background())
		eng.ChangeLocale(context.Background(), "es")
		require.Equal(t, "es", eng.ActiveLocale())

		// A failing non-default load falls back to the resident default
		// catalog and commits the default locale.
		fail = true
		eng.ChangeLocale(context.Background(), "es")
		assert.Equal(t, engine.StatusReady, eng.Status())
		assert.Equal(t, "en", eng.ActiveLocale())
		assert.Equal(t, "Hello", eng.T("greeting"))
	})
}

func TestUninitializedAccess(t *testing.T) {
	t.Parallel()

	eng, err := engine.New(
		engine.WithDefaultLocale("en"),
		engine.WithSupportedLocales("es"),
		engine.WithLoader(testLoader()),
	)
	require.NoError(t, err)

	assert.Equal(t, engine.StatusUninitialized, eng.Status())
	assert.Equal(t, "en", eng.ActiveLocale())
	assert.Equal(t, "nav.home", eng.T("nav.home"))

	eng.ChangeLocale(context.Background(), "es")
	assert.Equal(t, engine.StatusUninitialized, eng.Status())
	assert.Equal(t, "en", eng.ActiveLocale())
}

func TestSubscribe(t *testing.T) {
	t.Parallel()

	t.Run("notified on locale change", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		var got []string
		eng.Subscribe(func(code string) { got = append(got, code) })
		eng.ChangeLocale(context.Background(), "es")
		eng.ChangeLocale(context.Background(), "en")
		assert.Equal(t, []string{"es", "en"}, got)
	})

	t.Run("not notified without a change", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		var calls int
		eng.Subscribe(func(string) { calls++ })
		eng.ChangeLocale(context.Background(), "en")
		assert.Zero(t, calls)
	})

	t.Run("cancel stops notifications", func(t *testing.T) {
		t.Parallel()
		eng := newStarted(t)
		var calls int
		cancel := eng.Subscribe(func(string) { calls++ })
		eng.ChangeLocale(context.Background(), "es")
		cancel()
		eng.ChangeLocale(context.Background(), "en")
		assert.Equal(t, 1, calls)
	})

	t.Run("notified for initial non-default locale", func(t *testing.T) {
		t.Parallel()
		eng, err := engine.New(
			engine.WithDefaultLocale("en"),
			engine.WithSupportedLocales("es"),
			engine.WithLoader(testLoader()),
			engine.WithEnvironmentSignal(func() string { return "es" }),
		)
		require.NoError(t, err)
		var got []string
		eng.Subscribe(func(code string) { got = append(got, code) })
		eng.Start(context.Background())
		assert.Equal(t, []string{"es"}, got)
	})
}
