package engine

// Status is the engine lifecycle state.
type Status int

const (
	// StatusUninitialized means Start has not been called yet. Every API
	// call is still safe: T is identity, ChangeLocale is a no-op.
	StatusUninitialized Status = iota

	// StatusLoading means the initial catalogs are being acquired.
	StatusLoading

	// StatusReady means the engine serves translations normally.
	StatusReady

	// StatusSwitchingLocale means a locale change is in flight. Resolution
	// keeps serving the previous committed state until the switch commits.
	StatusSwitchingLocale

	// StatusDegraded means even the default catalog could not be loaded.
	// The engine stays usable: every key resolves to itself.
	StatusDegraded
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusSwitchingLocale:
		return "switching_locale"
	case StatusDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}
