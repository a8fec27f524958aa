// Package securestore defines the secure item store consumed by the key
// management services, plus the adapters that implement it. Items are keyed
// by a composite of (class, key type, tag); the store guarantees at most one
// live item per composite key.
//
// Status mapping follows a tri-state contract: an operation succeeds, fails
// with errors.ErrNotFound when the composite key has no live item, or fails
// with errors.ErrStoreRejected for every other refusal (the underlying cause
// stays wrapped for diagnostics).
package securestore

import (
	"context"

	apperrors "github.com/allisson/credstore/internal/errors"
)

// ItemClass identifies the kind of entry held by the store.
type ItemClass string

// Supported item classes.
const (
	// ClassGenericSecret holds opaque application blobs (e.g. credential records).
	ClassGenericSecret ItemClass = "generic-secret"
	// ClassKey holds cryptographic key material.
	ClassKey ItemClass = "key"
)

// KeyType identifies the role of key material within ClassKey.
// Generic secrets leave it empty.
type KeyType string

// Supported key types.
const (
	KeyTypeNone      KeyType = ""
	KeyTypeSymmetric KeyType = "symmetric"
	KeyTypePrivate   KeyType = "private"
	KeyTypePublic    KeyType = "public"
)

// Attributes is the composite key identifying one logical item.
// A public-key tag and a private-key tag are different namespaces even when
// conceptually paired.
type Attributes struct {
	Class   ItemClass
	KeyType KeyType
	Tag     string
}

// Valid reports whether the attributes form a usable composite key.
func (a Attributes) Valid() bool {
	if a.Tag == "" {
		return false
	}
	switch a.Class {
	case ClassGenericSecret:
		return a.KeyType == KeyTypeNone
	case ClassKey:
		switch a.KeyType {
		case KeyTypeSymmetric, KeyTypePrivate, KeyTypePublic:
			return true
		}
	}
	return false
}

// Item is one stored entry: its identifying attributes plus opaque data.
type Item struct {
	Attributes Attributes
	Data       []byte
}

// Store is the secure item store contract.
//
// The store is the sole arbiter of consistency: no in-process locking is
// layered on top, so concurrent writers racing on the same attributes get a
// store-defined winner. Callers needing stronger guarantees must add their
// own per-tag mutual exclusion.
type Store interface {
	// Insert adds a new item. Fails with ErrStoreRejected if an item already
	// exists under the same attributes or the store refuses the write.
	Insert(ctx context.Context, item Item) error

	// Query returns the item stored under attrs, or ErrNotFound.
	// It never returns partial data.
	Query(ctx context.Context, attrs Attributes) (*Item, error)

	// Update replaces the data of an existing item. Fails with ErrNotFound
	// when no item exists under attrs; it never creates one.
	Update(ctx context.Context, attrs Attributes, data []byte) error

	// Erase removes the item stored under attrs. Fails with ErrNotFound when
	// no item exists; callers treating erase as idempotent map that to success.
	Erase(ctx context.Context, attrs Attributes) error
}

// validateAttributes is shared by adapters to reject malformed composite keys
// before touching the backend.
func validateAttributes(attrs Attributes) error {
	if !attrs.Valid() {
		return apperrors.Wrapf(
			apperrors.ErrStoreRejected,
			"invalid attributes: class=%q key_type=%q tag=%q",
			attrs.Class, attrs.KeyType, attrs.Tag,
		)
	}
	return nil
}
