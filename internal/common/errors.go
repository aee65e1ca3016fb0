// Package common defines sentinel errors shared by the repositories, the
// generator and the application layer. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound    = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Generation errors.
	ErrorInvalidParams = errors.New("invalid generation parameters")
	ErrorUnknownLogger = errors.New("unknown log backend")
)
