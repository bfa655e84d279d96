// Package errorspkg provides common app errors.
package errorspkg

import "errors"

var (
	// ErrInternal indicates unexpected application error.
	ErrInternal = errors.New("internal")
	// ErrInvalidInput indicates input that cannot be parsed into the requested type.
	ErrInvalidInput = errors.New("invalid input")
)
