package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"

	cryptoDomain "github.com/allisson/credstore/internal/crypto/domain"
	apperrors "github.com/allisson/credstore/internal/errors"
	keysDomain "github.com/allisson/credstore/internal/keys/domain"
	"github.com/allisson/credstore/internal/securestore"
)

// KeyManagerService implements KeyManager over a securestore.Store.
//
// No key material is cached across calls; every operation round-trips
// through the store so material is released when the call returns.
type KeyManagerService struct {
	store securestore.Store
}

// NewKeyManager creates a KeyManagerService backed by the given store.
func NewKeyManager(store securestore.Store) *KeyManagerService {
	return &KeyManagerService{store: store}
}

func rawKeyAttrs(tag string) securestore.Attributes {
	return securestore.Attributes{
		Class:   securestore.ClassKey,
		KeyType: securestore.KeyTypeSymmetric,
		Tag:     tag,
	}
}

func privateKeyAttrs(tag string) securestore.Attributes {
	return securestore.Attributes{
		Class:   securestore.ClassKey,
		KeyType: securestore.KeyTypePrivate,
		Tag:     tag,
	}
}

func publicKeyAttrs(tag string) securestore.Attributes {
	return securestore.Attributes{
		Class:   securestore.ClassKey,
		KeyType: securestore.KeyTypePublic,
		Tag:     tag,
	}
}

func secretAttrs(tag string) securestore.Attributes {
	return securestore.Attributes{
		Class: securestore.ClassGenericSecret,
		Tag:   tag,
	}
}

// upsert removes any existing item under attrs and inserts the new one.
// The erase-then-insert sequence is not serialized against concurrent
// writers; the store defines which write wins.
func (k *KeyManagerService) upsert(ctx context.Context, attrs securestore.Attributes, data []byte) error {
	if err := k.store.Erase(ctx, attrs); err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return k.store.Insert(ctx, securestore.Item{Attributes: attrs, Data: data})
}

// Save stores raw key material under tag with upsert-by-replace semantics.
func (k *KeyManagerService) Save(ctx context.Context, tag string, material []byte) error {
	return k.upsert(ctx, rawKeyAttrs(tag), material)
}

// Load returns the raw key material stored under tag.
func (k *KeyManagerService) Load(ctx context.Context, tag string) ([]byte, error) {
	item, err := k.store.Query(ctx, rawKeyAttrs(tag))
	if err != nil {
		return nil, err
	}
	return item.Data, nil
}

// Update replaces the material of an existing entry, failing closed when the
// tag is absent.
func (k *KeyManagerService) Update(ctx context.Context, tag string, material []byte) error {
	return k.store.Update(ctx, rawKeyAttrs(tag), material)
}

// Delete removes the entry under tag; deleting an absent entry succeeds.
func (k *KeyManagerService) Delete(ctx context.Context, tag string) error {
	if err := k.store.Erase(ctx, rawKeyAttrs(tag)); err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}

// SaveSecret stores an opaque blob on the generic-secret path.
func (k *KeyManagerService) SaveSecret(ctx context.Context, tag string, blob []byte) error {
	return k.upsert(ctx, secretAttrs(tag), blob)
}

// LoadSecret returns the blob stored on the generic-secret path.
func (k *KeyManagerService) LoadSecret(ctx context.Context, tag string) ([]byte, error) {
	item, err := k.store.Query(ctx, secretAttrs(tag))
	if err != nil {
		return nil, err
	}
	return item.Data, nil
}

// DeleteSecret removes the generic-secret entry; absent is a no-op success.
func (k *KeyManagerService) DeleteSecret(ctx context.Context, tag string) error {
	if err := k.store.Erase(ctx, secretAttrs(tag)); err != nil && !apperrors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}

// GenerateKeyPair produces a fresh RSA-2048 pair and persists both halves
// under tag. If persisting the public half fails, the private half is erased
// so no partial state remains.
func (k *KeyManagerService) GenerateKeyPair(ctx context.Context, tag string) (*keysDomain.KeyPair, error) {
	priv, err := rsa.GenerateKey(rand.Reader, cryptoDomain.RSAKeyBits)
	if err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrKeyGenerationFailed, err.Error())
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrKeyGenerationFailed, err.Error())
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrKeyGenerationFailed, err.Error())
	}

	if err := k.upsert(ctx, privateKeyAttrs(tag), privDER); err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrKeyGenerationFailed, err.Error())
	}

	if err := k.upsert(ctx, publicKeyAttrs(tag), pubDER); err != nil {
		// Best-effort rollback of the private half.
		_ = k.store.Erase(ctx, privateKeyAttrs(tag))
		return nil, apperrors.Wrap(cryptoDomain.ErrKeyGenerationFailed, err.Error())
	}

	return &keysDomain.KeyPair{
		Tag:     tag,
		Private: priv,
		Public:  &priv.PublicKey,
	}, nil
}

// RetrievePrivateKey returns the private key persisted under tag.
func (k *KeyManagerService) RetrievePrivateKey(ctx context.Context, tag string) (*rsa.PrivateKey, error) {
	item, err := k.store.Query(ctx, privateKeyAttrs(tag))
	if err != nil {
		return nil, err
	}

	key, err := x509.ParsePKCS8PrivateKey(item.Data)
	if err != nil {
		return nil, apperrors.Wrap(keysDomain.ErrInvalidKeyMaterial, err.Error())
	}

	priv, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, apperrors.Wrap(keysDomain.ErrInvalidKeyMaterial, "not an RSA private key")
	}
	return priv, nil
}

// RetrievePublicKey returns the public key persisted under tag.
func (k *KeyManagerService) RetrievePublicKey(ctx context.Context, tag string) (*rsa.PublicKey, error) {
	item, err := k.store.Query(ctx, publicKeyAttrs(tag))
	if err != nil {
		return nil, err
	}

	key, err := x509.ParsePKIXPublicKey(item.Data)
	if err != nil {
		return nil, apperrors.Wrap(keysDomain.ErrInvalidKeyMaterial, err.Error())
	}

	pub, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, apperrors.Wrap(keysDomain.ErrInvalidKeyMaterial, "not an RSA public key")
	}
	return pub, nil
}
