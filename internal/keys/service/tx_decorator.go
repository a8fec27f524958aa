package service

import (
	"context"
	"crypto/rsa"

	"github.com/allisson/credstore/internal/database"
	keysDomain "github.com/allisson/credstore/internal/keys/domain"
)

// keyManagerWithTx wraps a KeyManager, running the multi-step write paths
// (erase-then-insert upserts, key pair persistence) inside a database
// transaction so no partial state survives a failure. Read and single-step
// operations pass through unchanged.
type keyManagerWithTx struct {
	inner     KeyManager
	txManager database.TxManager
}

// NewKeyManagerWithTx decorates a KeyManager with transactional write paths.
// Only useful when the underlying store is SQL-backed; in-memory stores have
// nothing to gain from it.
func NewKeyManagerWithTx(inner KeyManager, txManager database.TxManager) KeyManager {
	return &keyManagerWithTx{
		inner:     inner,
		txManager: txManager,
	}
}

func (k *keyManagerWithTx) Save(ctx context.Context, tag string, material []byte) error {
	return k.txManager.WithTx(ctx, func(ctx context.Context) error {
		return k.inner.Save(ctx, tag, material)
	})
}

func (k *keyManagerWithTx) Load(ctx context.Context, tag string) ([]byte, error) {
	return k.inner.Load(ctx, tag)
}

func (k *keyManagerWithTx) Update(ctx context.Context, tag string, material []byte) error {
	return k.inner.Update(ctx, tag, material)
}

func (k *keyManagerWithTx) Delete(ctx context.Context, tag string) error {
	return k.inner.Delete(ctx, tag)
}

func (k *keyManagerWithTx) SaveSecret(ctx context.Context, tag string, blob []byte) error {
	return k.txManager.WithTx(ctx, func(ctx context.Context) error {
		return k.inner.SaveSecret(ctx, tag, blob)
	})
}

func (k *keyManagerWithTx) LoadSecret(ctx context.Context, tag string) ([]byte, error) {
	return k.inner.LoadSecret(ctx, tag)
}

func (k *keyManagerWithTx) DeleteSecret(ctx context.Context, tag string) error {
	return k.inner.DeleteSecret(ctx, tag)
}

func (k *keyManagerWithTx) GenerateKeyPair(ctx context.Context, tag string) (*keysDomain.KeyPair, error) {
	var pair *keysDomain.KeyPair
	err := k.txManager.WithTx(ctx, func(ctx context.Context) error {
		var innerErr error
		pair, innerErr = k.inner.GenerateKeyPair(ctx, tag)
		return innerErr
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

func (k *keyManagerWithTx) RetrievePrivateKey(ctx context.Context, tag string) (*rsa.PrivateKey, error) {
	return k.inner.RetrievePrivateKey(ctx, tag)
}

func (k *keyManagerWithTx) RetrievePublicKey(ctx context.Context, tag string) (*rsa.PublicKey, error) {
	return k.inner.RetrievePublicKey(ctx, tag)
}
