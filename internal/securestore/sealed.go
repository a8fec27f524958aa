package securestore

import (
	"context"
	"crypto/rand"
	"io"

	"gocloud.dev/secrets"
	"golang.org/x/crypto/chacha20poly1305"

	apperrors "github.com/allisson/credstore/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// Sealer wraps and unwraps item data so the delegate store only ever holds
// sealed bytes.
type Sealer interface {
	// Seal encrypts plaintext for storage.
	Seal(ctx context.Context, plaintext []byte) ([]byte, error)

	// Open decrypts previously sealed bytes.
	Open(ctx context.Context, sealed []byte) ([]byte, error)
}

// KeeperSealer seals item data through a gocloud.dev secrets.Keeper, letting
// a KMS provider (gcpkms://, awskms://, azurekeyvault://, hashivault://,
// base64key://) hold the wrapping key.
type KeeperSealer struct {
	keeper *secrets.Keeper
}

// OpenKeeperSealer opens the keeper for keyURI and returns a sealer bound to it.
func OpenKeeperSealer(ctx context.Context, keyURI string) (*KeeperSealer, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	return &KeeperSealer{keeper: keeper}, nil
}

// Seal encrypts plaintext with the keeper's wrapping key.
func (k *KeeperSealer) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	sealed, err := k.keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, err.Error())
	}
	return sealed, nil
}

// Open decrypts sealed bytes with the keeper's wrapping key.
func (k *KeeperSealer) Open(ctx context.Context, sealed []byte) ([]byte, error) {
	plaintext, err := k.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, err.Error())
	}
	return plaintext, nil
}

// Close releases the keeper.
func (k *KeeperSealer) Close() error {
	return k.keeper.Close()
}

// AEADSealer seals item data locally with ChaCha20-Poly1305. Used when no
// KMS is configured; the 32-byte key comes from configuration.
type AEADSealer struct {
	key []byte
}

// NewAEADSealer creates a local sealer from a 32-byte key.
func NewAEADSealer(key []byte) (*AEADSealer, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"sealing key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key),
		)
	}
	return &AEADSealer{key: key}, nil
}

// Seal encrypts plaintext, prepending the random nonce to the ciphertext.
func (a *AEADSealer) Seal(ctx context.Context, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(a.key)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, err.Error())
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, err.Error())
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts bytes produced by Seal.
func (a *AEADSealer) Open(ctx context.Context, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(a.key)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, err.Error())
	}

	if len(sealed) < aead.NonceSize() {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, "sealed data too short")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCryptoFailure, "failed to open sealed data")
	}
	return plaintext, nil
}

// SealedStore decorates another Store so item data is sealed at rest.
// Attributes stay in the clear; only Data is transformed.
type SealedStore struct {
	next   Store
	sealer Sealer
}

// NewSealedStore wraps next with at-rest sealing.
func NewSealedStore(next Store, sealer Sealer) *SealedStore {
	return &SealedStore{next: next, sealer: sealer}
}

// Insert seals the item data before delegating.
func (s *SealedStore) Insert(ctx context.Context, item Item) error {
	sealed, err := s.sealer.Seal(ctx, item.Data)
	if err != nil {
		return err
	}
	item.Data = sealed
	return s.next.Insert(ctx, item)
}

// Query delegates, then opens the sealed data.
func (s *SealedStore) Query(ctx context.Context, attrs Attributes) (*Item, error) {
	item, err := s.next.Query(ctx, attrs)
	if err != nil {
		return nil, err
	}

	plaintext, err := s.sealer.Open(ctx, item.Data)
	if err != nil {
		return nil, err
	}
	item.Data = plaintext
	return item, nil
}

// Update seals the replacement data before delegating.
func (s *SealedStore) Update(ctx context.Context, attrs Attributes, data []byte) error {
	sealed, err := s.sealer.Seal(ctx, data)
	if err != nil {
		return err
	}
	return s.next.Update(ctx, attrs, sealed)
}

// Erase delegates unchanged; there is no data to transform.
func (s *SealedStore) Erase(ctx context.Context, attrs Attributes) error {
	return s.next.Erase(ctx, attrs)
}
