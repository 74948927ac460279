package engine

import "errors"

var (
	ErrNilLoader = errors.New("engine: catalog loader is required")
)
