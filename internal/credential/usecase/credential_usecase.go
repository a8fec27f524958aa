package usecase

import (
	"context"
	"encoding/json"

	credentialDomain "github.com/allisson/credstore/internal/credential/domain"
	cryptoService "github.com/allisson/credstore/internal/crypto/service"
	apperrors "github.com/allisson/credstore/internal/errors"
	keysService "github.com/allisson/credstore/internal/keys/service"
)

// credentialUseCase implements CredentialUseCase.
type credentialUseCase struct {
	keyManager keysService.KeyManager
	encrypter  cryptoService.Encrypter
}

// NewCredentialUseCase creates a credential use case with the provided
// dependencies.
func NewCredentialUseCase(
	keyManager keysService.KeyManager,
	encrypter cryptoService.Encrypter,
) CredentialUseCase {
	return &credentialUseCase{
		keyManager: keyManager,
		encrypter:  encrypter,
	}
}

// Save encrypts the secret and persists the serialized record.
func (c *credentialUseCase) Save(
	ctx context.Context,
	identifier string,
	secret []byte,
	keyTag string,
) error {
	pub, err := c.keyManager.RetrievePublicKey(ctx, keyTag)
	if err != nil {
		return err
	}

	// Abort before the store is touched if the secret cannot be protected.
	ciphertext, err := c.encrypter.Encrypt(secret, pub)
	if err != nil {
		return err
	}

	record := credentialDomain.Record{
		Identifier: identifier,
		Payload:    ciphertext,
	}
	blob, err := json.Marshal(record)
	if err != nil {
		return apperrors.Wrap(credentialDomain.ErrMalformedRecord, err.Error())
	}

	return c.keyManager.SaveSecret(ctx, credentialDomain.WellKnownTag, blob)
}

// Load reads, deserializes, and decrypts the credential record.
func (c *credentialUseCase) Load(
	ctx context.Context,
	keyTag string,
) (*credentialDomain.Credential, error) {
	blob, err := c.keyManager.LoadSecret(ctx, credentialDomain.WellKnownTag)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, credentialDomain.ErrCredentialNotFound
		}
		return nil, err
	}

	var record credentialDomain.Record
	if err := json.Unmarshal(blob, &record); err != nil {
		return nil, apperrors.Wrap(credentialDomain.ErrMalformedRecord, err.Error())
	}

	priv, err := c.keyManager.RetrievePrivateKey(ctx, keyTag)
	if err != nil {
		return nil, err
	}

	secret, err := c.encrypter.Decrypt(record.Payload, priv)
	if err != nil {
		return nil, err
	}

	return &credentialDomain.Credential{
		Identifier: record.Identifier,
		Secret:     secret,
	}, nil
}

// Delete removes the credential record.
func (c *credentialUseCase) Delete(ctx context.Context) error {
	return c.keyManager.DeleteSecret(ctx, credentialDomain.WellKnownTag)
}
