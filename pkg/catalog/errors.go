package catalog

import "errors"

var (
	ErrNotFound          = errors.New("catalog: no catalog for locale")
	ErrUnsupportedLocale = errors.New("catalog: locale not registered")
	ErrMalformed         = errors.New("catalog: malformed catalog data")
)
