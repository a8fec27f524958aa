package domain

import (
	"github.com/allisson/credstore/internal/errors"
)

// Credential-specific error definitions.
var (
	// ErrCredentialNotFound indicates no credential record exists under the
	// well-known tag.
	ErrCredentialNotFound = errors.Wrap(errors.ErrNotFound, "credential not found")

	// ErrMalformedRecord indicates the stored blob could not be parsed into a
	// credential record. Callers treat this as "nothing usable found".
	ErrMalformedRecord = errors.Wrap(errors.ErrSerialization, "malformed credential record")
)
