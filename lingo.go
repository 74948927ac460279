package lingo

import (
	"github.com/dmitrymomot/lingo/pkg/catalog"
	"github.com/dmitrymomot/lingo/pkg/engine"
	"github.com/dmitrymomot/lingo/pkg/locale"
)

// Type aliases - public API
type (
	// Engine resolves translation keys and manages the active locale.
	Engine = engine.Engine

	// Option configures the Engine during construction.
	Option = engine.Option

	// Status is the engine lifecycle state.
	Status = engine.Status

	// Catalog is the nested key-to-string translation tree for one locale.
	Catalog = catalog.Catalog

	// Loader produces the catalog for a locale code.
	Loader = catalog.Loader

	// Set is the closed set of supported locale codes.
	Set = locale.Set
)

// Engine statuses.
const (
	StatusUninitialized   = engine.StatusUninitialized
	StatusLoading         = engine.StatusLoading
	StatusReady           = engine.StatusReady
	StatusSwitchingLocale = engine.StatusSwitchingLocale
	StatusDegraded        = engine.StatusDegraded
)

// New creates an Engine; see package engine for the available options.
func New(opts ...Option) (*Engine, error) {
	return engine.New(opts...)
}

// Engine construction options.
var (
	WithDefaultLocale     = engine.WithDefaultLocale
	WithSupportedLocales  = engine.WithSupportedLocales
	WithLoader            = engine.WithLoader
	WithPreferenceStore   = engine.WithPreferenceStore
	WithEnvironmentSignal = engine.WithEnvironmentSignal
	WithLogger            = engine.WithLogger
	WithMissingKeyHandler = engine.WithMissingKeyHandler
)
