// Package domain defines the core domain models for key management. A key
// entry is opaque byte material scoped by a tag; at most one live entry
// exists per (tag, kind) at any time.
package domain

import (
	"crypto/rsa"
)

// KeyKind identifies the role of stored key material.
type KeyKind string

// Supported key kinds.
const (
	KindSymmetric KeyKind = "symmetric"
	KindPrivate   KeyKind = "asymmetric-private"
	KindPublic    KeyKind = "asymmetric-public"
)

// KeyEntry is one stored key: its identifying tag, role, and material.
// Material is exclusively owned by the secure store; instances of this type
// only live for the duration of a single call.
type KeyEntry struct {
	Tag      string
	Kind     KeyKind
	Material []byte
}

// KeyPair is a paired private/public reference produced atomically by one
// generation call. The private half is persisted as part of generation; the
// public half is derivable from the private at any time.
type KeyPair struct {
	Tag     string
	Private *rsa.PrivateKey
	Public  *rsa.PublicKey
}
