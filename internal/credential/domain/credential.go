// Package domain defines the core domain models for stored credentials.
// A credential is an (identifier, secret) pair persisted as a single opaque
// blob under a well-known tag; the secret is always encrypted before it
// reaches the store.
package domain

// WellKnownTag is the fixed generic-secret tag the serialized credential
// record is stored under.
const WellKnownTag = "credential-record"

// Credential is the user-facing record: an identifier plus its decrypted
// secret. The secret only exists in memory for the duration of a call.
type Credential struct {
	Identifier string
	Secret     []byte
}

// Record is the serialized shape persisted to the store. Payload is always
// the output of the encryption service, never plaintext.
type Record struct {
	Identifier string `json:"identifier"`
	Payload    []byte `json:"protected_payload"`
}
