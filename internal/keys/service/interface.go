// Package service implements key lifecycle management over the secure store.
package service

import (
	"context"
	"crypto/rsa"

	keysDomain "github.com/allisson/credstore/internal/keys/domain"
)

// KeyManager owns create/read/update/delete of opaque key material by tag,
// generation of asymmetric key pairs, and the generic-secret storage path
// used for serialized records.
//
// All write operations fully replace or fully remove state, so retrying a
// failed call is safe; there is no partial-write state to corrupt. The
// secure store is the sole arbiter under concurrent writers on one tag.
type KeyManager interface {
	// Save stores raw key material under tag, replacing any existing entry
	// (upsert by replace, not insert-or-fail).
	Save(ctx context.Context, tag string, material []byte) error

	// Load returns the stored material for tag, or ErrNotFound.
	Load(ctx context.Context, tag string) ([]byte, error)

	// Update replaces the material of an existing entry. Fails closed with
	// ErrNotFound when no entry exists; it never creates one.
	Update(ctx context.Context, tag string, material []byte) error

	// Delete removes the entry if present. Deleting an absent entry is a
	// no-op success.
	Delete(ctx context.Context, tag string) error

	// SaveSecret stores an opaque blob on the generic-secret path under tag,
	// with the same upsert-by-replace semantics as Save.
	SaveSecret(ctx context.Context, tag string, blob []byte) error

	// LoadSecret returns the blob stored on the generic-secret path, or
	// ErrNotFound.
	LoadSecret(ctx context.Context, tag string) ([]byte, error)

	// DeleteSecret removes the generic-secret entry; absent is a no-op success.
	DeleteSecret(ctx context.Context, tag string) error

	// GenerateKeyPair produces a fresh RSA-2048 key pair and persists both
	// halves under tag as part of generation. On failure no partial state
	// remains.
	GenerateKeyPair(ctx context.Context, tag string) (*keysDomain.KeyPair, error)

	// RetrievePrivateKey returns the private key stored under tag, or
	// ErrNotFound. The private-key tag namespace is distinct from the
	// public-key namespace even for a conceptually paired tag.
	RetrievePrivateKey(ctx context.Context, tag string) (*rsa.PrivateKey, error)

	// RetrievePublicKey returns the public key stored under tag, or ErrNotFound.
	RetrievePublicKey(ctx context.Context, tag string) (*rsa.PublicKey, error)
}
