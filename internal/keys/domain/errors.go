package domain

import (
	"github.com/allisson/credstore/internal/errors"
)

// Key-specific error definitions.
var (
	// ErrKeyNotFound indicates no live entry exists under the requested tag.
	ErrKeyNotFound = errors.Wrap(errors.ErrNotFound, "key not found")

	// ErrInvalidKeyMaterial indicates persisted key material could not be
	// parsed back into the expected key shape.
	ErrInvalidKeyMaterial = errors.Wrap(errors.ErrSerialization, "invalid key material")
)
