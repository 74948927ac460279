package prefstore

import "errors"

var (
	ErrNotFound = errors.New("prefstore: no preference stored")
)
