package service

import (
	"context"
	"crypto/rsa"
	"time"

	keysDomain "github.com/allisson/credstore/internal/keys/domain"
	"github.com/allisson/credstore/internal/metrics"
)

// keyManagerWithMetrics decorates KeyManager with metrics instrumentation.
type keyManagerWithMetrics struct {
	next    KeyManager
	metrics metrics.BusinessMetrics
}

// NewKeyManagerWithMetrics wraps a KeyManager with metrics recording.
func NewKeyManagerWithMetrics(next KeyManager, m metrics.BusinessMetrics) KeyManager {
	return &keyManagerWithMetrics{next: next, metrics: m}
}

func (k *keyManagerWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	k.metrics.RecordOperation(ctx, "keys", operation, status)
	k.metrics.RecordDuration(ctx, "keys", operation, time.Since(start), status)
}

func (k *keyManagerWithMetrics) Save(ctx context.Context, tag string, material []byte) error {
	start := time.Now()
	err := k.next.Save(ctx, tag, material)
	k.record(ctx, "key_save", start, err)
	return err
}

func (k *keyManagerWithMetrics) Load(ctx context.Context, tag string) ([]byte, error) {
	start := time.Now()
	material, err := k.next.Load(ctx, tag)
	k.record(ctx, "key_load", start, err)
	return material, err
}

func (k *keyManagerWithMetrics) Update(ctx context.Context, tag string, material []byte) error {
	start := time.Now()
	err := k.next.Update(ctx, tag, material)
	k.record(ctx, "key_update", start, err)
	return err
}

func (k *keyManagerWithMetrics) Delete(ctx context.Context, tag string) error {
	start := time.Now()
	err := k.next.Delete(ctx, tag)
	k.record(ctx, "key_delete", start, err)
	return err
}

func (k *keyManagerWithMetrics) SaveSecret(ctx context.Context, tag string, blob []byte) error {
	start := time.Now()
	err := k.next.SaveSecret(ctx, tag, blob)
	k.record(ctx, "secret_save", start, err)
	return err
}

func (k *keyManagerWithMetrics) LoadSecret(ctx context.Context, tag string) ([]byte, error) {
	start := time.Now()
	blob, err := k.next.LoadSecret(ctx, tag)
	k.record(ctx, "secret_load", start, err)
	return blob, err
}

func (k *keyManagerWithMetrics) DeleteSecret(ctx context.Context, tag string) error {
	start := time.Now()
	err := k.next.DeleteSecret(ctx, tag)
	k.record(ctx, "secret_delete", start, err)
	return err
}

func (k *keyManagerWithMetrics) GenerateKeyPair(ctx context.Context, tag string) (*keysDomain.KeyPair, error) {
	start := time.Now()
	pair, err := k.next.GenerateKeyPair(ctx, tag)
	k.record(ctx, "keypair_generate", start, err)
	return pair, err
}

func (k *keyManagerWithMetrics) RetrievePrivateKey(ctx context.Context, tag string) (*rsa.PrivateKey, error) {
	start := time.Now()
	key, err := k.next.RetrievePrivateKey(ctx, tag)
	k.record(ctx, "private_key_retrieve", start, err)
	return key, err
}

func (k *keyManagerWithMetrics) RetrievePublicKey(ctx context.Context, tag string) (*rsa.PublicKey, error) {
	start := time.Now()
	key, err := k.next.RetrievePublicKey(ctx, tag)
	k.record(ctx, "public_key_retrieve", start, err)
	return key, err
}
