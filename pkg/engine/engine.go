package engine

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/lingo/pkg/catalog"
	"github.com/dmitrymomot/lingo/pkg/locale"
	"github.com/dmitrymomot/lingo/pkg/logger"
	"github.com/dmitrymomot/lingo/pkg/prefstore"
)

// state is one committed snapshot of the engine. The active locale and
// its catalog always travel together in a single snapshot, so readers
// never observe a locale without its matching catalog.
type state struct {
	status Status
	locale string
	active catalog.Catalog
	def    catalog.Catalog
}

// Engine resolves dotted translation keys against the active locale's
// catalog, falling back to the default locale's catalog and finally to
// the raw key. It never panics, never returns errors to callers, and
// never blocks inside T.
//
// Commits swap an atomic pointer to an immutable snapshot. Concurrent
// ChangeLocale calls are deliberately not serialized: whichever load
// finishes last wins, matching the low-frequency user-driven toggle this
// engine serves.
type Engine struct {
	set     locale.Set
	loader  catalog.Loader
	store   prefstore.Store
	signal  func() string
	log     *slog.Logger
	missing func(code, key string)

	state atomic.Pointer[state]

	subMu  sync.Mutex
	subs   map[int]func(code string)
	nextID int
}

// Option configures the Engine during construction.
type Option func(*config)

type config struct {
	defaultLocale string
	locales       []string
	loader        catalog.Loader
	store         prefstore.Store
	signal        func() string
	log           *slog.Logger
	missing       func(code, key string)
}

// WithDefaultLocale sets the default/fallback locale. Its catalog is the
// completeness reference and stays resident for the engine's lifetime.
// Default: "en".
func WithDefaultLocale(code string) Option {
	return func(cfg *config) {
		cfg.defaultLocale = code
	}
}

// WithSupportedLocales sets the closed set of locales the engine serves,
// in addition to the default.
func WithSupportedLocales(codes ...string) Option {
	return func(cfg *config) {
		cfg.locales = codes
	}
}

// WithLoader sets the catalog loader. Required.
func WithLoader(loader catalog.Loader) Option {
	return func(cfg *config) {
		cfg.loader = loader
	}
}

// WithPreferenceStore sets the persistence backend for the user's locale
// choice. Optional; without it the engine simply does not persist.
func WithPreferenceStore(store prefstore.Store) Option {
	return func(cfg *config) {
		cfg.store = store
	}
}

// WithEnvironmentSignal overrides how the engine reads the environment
// locale signal during Start. Default: locale.EnvironmentSignal.
// A panic inside the func is recovered and treated as "no signal".
func WithEnvironmentSignal(fn func() string) Option {
	return func(cfg *config) {
		cfg.signal = fn
	}
}

// WithLogger sets the diagnostics logger. Default: a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(cfg *config) {
		cfg.log = log
	}
}

// WithMissingKeyHandler sets a handler called whenever a key misses both
// the active and the default catalog. Useful for detecting untranslated
// keys during development or monitoring gaps in translations.
func WithMissingKeyHandler(fn func(code, key string)) Option {
	return func(cfg *config) {
		cfg.missing = fn
	}
}

// New creates an Engine. The engine starts Uninitialized; call Start to
// load catalogs and begin serving translations.
func New(opts ...Option) (*Engine, error) {
	cfg := &config{
		defaultLocale: locale.DefaultCode,
		signal:        locale.EnvironmentSignal,
		log:           logger.NewNope(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.loader == nil {
		return nil, ErrNilLoader
	}

	set, err := locale.NewSet(cfg.defaultLocale, cfg.locales...)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		set:     set,
		loader:  cfg.loader,
		store:   cfg.store,
		signal:  cfg.signal,
		log:     cfg.log,
		missing: cfg.missing,
		subs:    make(map[int]func(string)),
	}
	e.state.Store(&state{
		status: StatusUninitialized,
		locale: set.Default(),
		active: catalog.Catalog{},
		def:    catalog.Catalog{},
	})
	return e, nil
}

// Start transitions Uninitialized → Loading, loads the default catalog,
// detects the initial locale, and commits Ready — or Degraded when even
// the default catalog cannot be obtained. Calling Start twice is a
// logged no-op.
func (e *Engine) Start(ctx context.Context) {
	cur := e.state.Load()
	if cur.status != StatusUninitialized {
		e.log.Warn("engine already started", slog.String("status", cur.status.String()))
		return
	}
	loading := &state{status: StatusLoading, locale: cur.locale, active: cur.active, def: cur.def}
	if !e.state.CompareAndSwap(cur, loading) {
		e.log.Warn("engine already started")
		return
	}

	stored := e.readPreference(ctx)
	initial := locale.Detect(stored, e.readSignal(), e.set)

	def, err := e.loader.Load(ctx, e.set.Default())
	if err != nil || def.IsEmpty() {
		e.log.Error("default catalog unavailable, entering degraded mode",
			slog.String("locale", e.set.Default()),
			slog.Any("error", err))
		empty := catalog.Catalog{}
		e.commit(&state{status: StatusDegraded, locale: e.set.Default(), active: empty, def: empty})
		return
	}

	active := def
	code := e.set.Default()
	if initial != e.set.Default() {
		code, active = e.loadWithFallback(ctx, initial, def)
	}
	e.commit(&state{status: StatusReady, locale: code, active: active, def: def})
}

// ChangeLocale switches the active locale. Invalid-format codes are
// rejected with a diagnostic and no state transition; unsupported codes
// are substituted with the default locale. The switch commits the new
// locale and its catalog as one unit, or retains the previous state when
// no catalog can be obtained. Failures never propagate to the caller.
func (e *Engine) ChangeLocale(ctx context.Context, code string) {
	cur := e.state.Load()
	switch cur.status {
	case StatusUninitialized, StatusLoading:
		e.log.Warn("locale change before engine is ready",
			slog.String("status", cur.status.String()),
			slog.String("locale", code))
		return
	case StatusDegraded:
		e.log.Warn("locale change ignored in degraded mode", slog.String("locale", code))
		return
	}

	if !locale.IsValid(code) {
		e.log.Warn("invalid locale code rejected", slog.String("locale", code))
		return
	}

	e.commit(&state{status: StatusSwitchingLocale, locale: cur.locale, active: cur.active, def: cur.def})

	resolved, cat := e.loadWithFallback(ctx, code, cur.def)
	if cat.IsEmpty() {
		e.log.Warn("locale change aborted, no catalog available",
			slog.String("locale", code))
		e.commit(&state{status: StatusReady, locale: cur.locale, active: cur.active, def: cur.def})
		return
	}

	e.commit(&state{status: StatusReady, locale: resolved, active: cat, def: cur.def})
	e.writePreference(ctx, resolved)
}

// ActiveLocale returns the currently committed locale. Before Start it
// returns the default locale.
func (e *Engine) ActiveLocale() string {
	return e.state.Load().locale
}

// DefaultLocale returns the default/fallback locale.
func (e *Engine) DefaultLocale() string {
	return e.set.Default()
}

// Supported returns the closed set of locales the engine serves.
func (e *Engine) Supported() locale.Set {
	return e.set
}

// Status returns the engine's lifecycle status.
func (e *Engine) Status() Status {
	return e.state.Load().status
}

// loadWithFallback acquires the catalog for code, degrading through the
// fallback chain: unsupported codes and failed or empty loads resolve to
// the default locale and the already-resident default catalog. The
// returned code always matches the returned catalog.
func (e *Engine) loadWithFallback(ctx context.Context, code string, def catalog.Catalog) (string, catalog.Catalog) {
	if !e.set.Contains(code) {
		e.log.Warn("unsupported locale, substituting default",
			slog.String("locale", code),
			slog.String("default", e.set.Default()))
		return e.set.Default(), def
	}
	if code == e.set.Default() {
		return code, def
	}

	cat, err := e.loader.Load(ctx, code)
	if err != nil || cat.IsEmpty() {
		e.log.Warn("catalog load failed, falling back to default",
			slog.String("locale", code),
			slog.Any("error", err))
		return e.set.Default(), def
	}
	return code, cat
}

// readPreference reads the persisted locale preference. Every failure is
// treated as absence; a stored value that fails validation is discarded
// and best-effort erased so it does not resurface.
func (e *Engine) readPreference(ctx context.Context) string {
	if e.store == nil {
		return ""
	}
	code, err := e.store.Read(ctx)
	if err != nil {
		if !errors.Is(err, prefstore.ErrNotFound) {
			e.log.Warn("preference read failed, treating as absent", slog.Any("error", err))
		}
		return ""
	}
	if !locale.IsValid(code) || !e.set.Contains(code) {
		e.log.Warn("discarding invalid stored preference", slog.String("locale", code))
		if err := e.store.Clear(ctx); err != nil {
			e.log.Debug("preference clear failed", slog.Any("error", err))
		}
		return ""
	}
	return code
}

// writePreference persists the committed locale. Persistence is
// advisory: failures are logged and never abort the locale change.
func (e *Engine) writePreference(ctx context.Context, code string) {
	if e.store == nil {
		return
	}
	if err := e.store.Write(ctx, code); err != nil {
		e.log.Warn("preference write failed", slog.String("locale", code), slog.Any("error", err))
	}
}

// readSignal reads the environment locale signal, recovering any panic
// from the injected reader and treating it as "no signal".
func (e *Engine) readSignal() (signal string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("environment signal read panicked", slog.Any("panic", r))
			signal = ""
		}
	}()
	if e.signal == nil {
		return ""
	}
	return e.signal()
}

// commit publishes a new snapshot and notifies subscribers when the
// active locale changed.
func (e *Engine) commit(next *state) {
	prev := e.state.Swap(next)
	if prev == nil || prev.locale != next.locale {
		e.notify(next.locale)
	}
}
