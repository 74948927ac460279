package engine

import (
	"fmt"
	"log/slog"
	"strings"
)

// T resolves a dotted key through the fallback chain: the active
// catalog, then the default catalog, then the key itself. It is
// synchronous, never fails, and always observes a fully committed
// (locale, catalog) pair.
func (e *Engine) T(key string) string {
	st := e.state.Load()
	if st.status == StatusUninitialized {
		e.log.Warn("translation requested before engine start", slog.String("key", key))
		return key
	}
	if strings.TrimSpace(key) == "" {
		return key
	}

	if v, ok := st.active.Lookup(key); ok {
		return v
	}

	if st.locale != e.set.Default() {
		if v, ok := st.def.Lookup(key); ok {
			e.log.Debug("key resolved from default catalog",
				slog.String("key", key),
				slog.String("locale", st.locale))
			return v
		}
	}

	e.log.Debug("missing translation key",
		slog.String("key", key),
		slog.String("locale", st.locale))
	if e.missing != nil {
		e.missing(st.locale, key)
	}
	return key
}

// TAny resolves a key of any type. Non-string input is coerced to its
// string form (nil yields "<nil>") with a diagnostic, then resolved with
// the same fallback chain as T.
func (e *Engine) TAny(key any) string {
	s, ok := key.(string)
	if !ok {
		s = fmt.Sprint(key)
		e.log.Warn("non-string translation key coerced", slog.String("key", s))
	}
	return e.T(s)
}
