// Package usecase implements business logic orchestration for credential
// storage. It coordinates the encryption service and the key manager so the
// secret is protected before the serialized record ever reaches the store.
package usecase

import (
	"context"

	credentialDomain "github.com/allisson/credstore/internal/credential/domain"
)

// CredentialUseCase manages the encrypted credential record.
type CredentialUseCase interface {
	// Save encrypts secret with the public key stored under keyTag, then
	// persists the serialized {identifier, ciphertext} record under the
	// well-known tag. On encryption failure it aborts without touching the
	// store.
	Save(ctx context.Context, identifier string, secret []byte, keyTag string) error

	// Load reads the record, decrypts the payload with the private key
	// stored under keyTag, and returns the credential. A missing record,
	// an unparseable blob, or a failed decrypt surfaces as an error the
	// caller maps to "absent"; a failed decrypt is never reported as a
	// successful load.
	Load(ctx context.Context, keyTag string) (*credentialDomain.Credential, error)

	// Delete removes the credential record; deleting an absent record is a
	// no-op success.
	Delete(ctx context.Context) error
}
