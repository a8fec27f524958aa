// Package mocks provides mock implementations for testing consumers of the
// key management service.
package mocks

import (
	"context"
	"crypto/rsa"

	"github.com/stretchr/testify/mock"

	keysDomain "github.com/allisson/credstore/internal/keys/domain"
)

// MockKeyManager is a mock implementation of KeyManager for testing.
type MockKeyManager struct {
	mock.Mock
}

// Save mocks the Save method of KeyManager.
func (m *MockKeyManager) Save(ctx context.Context, tag string, material []byte) error {
	args := m.Called(ctx, tag, material)
	return args.Error(0)
}

// Load mocks the Load method of KeyManager.
func (m *MockKeyManager) Load(ctx context.Context, tag string) ([]byte, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// Update mocks the Update method of KeyManager.
func (m *MockKeyManager) Update(ctx context.Context, tag string, material []byte) error {
	args := m.Called(ctx, tag, material)
	return args.Error(0)
}

// Delete mocks the Delete method of KeyManager.
func (m *MockKeyManager) Delete(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// SaveSecret mocks the SaveSecret method of KeyManager.
func (m *MockKeyManager) SaveSecret(ctx context.Context, tag string, blob []byte) error {
	args := m.Called(ctx, tag, blob)
	return args.Error(0)
}

// LoadSecret mocks the LoadSecret method of KeyManager.
func (m *MockKeyManager) LoadSecret(ctx context.Context, tag string) ([]byte, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// DeleteSecret mocks the DeleteSecret method of KeyManager.
func (m *MockKeyManager) DeleteSecret(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

// GenerateKeyPair mocks the GenerateKeyPair method of KeyManager.
func (m *MockKeyManager) GenerateKeyPair(ctx context.Context, tag string) (*keysDomain.KeyPair, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keysDomain.KeyPair), args.Error(1)
}

// RetrievePrivateKey mocks the RetrievePrivateKey method of KeyManager.
func (m *MockKeyManager) RetrievePrivateKey(ctx context.Context, tag string) (*rsa.PrivateKey, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PrivateKey), args.Error(1)
}

// RetrievePublicKey mocks the RetrievePublicKey method of KeyManager.
func (m *MockKeyManager) RetrievePublicKey(ctx context.Context, tag string) (*rsa.PublicKey, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsa.PublicKey), args.Error(1)
}
