package locale

import "errors"

var (
	ErrInvalidCode = errors.New("locale: code must be two lowercase letters")
)
