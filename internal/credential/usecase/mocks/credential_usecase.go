// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	credentialDomain "github.com/allisson/credstore/internal/credential/domain"
)

// MockCredentialUseCase is a mock implementation of CredentialUseCase for testing.
type MockCredentialUseCase struct {
	mock.Mock
}

// Save mocks the Save method of CredentialUseCase.
func (m *MockCredentialUseCase) Save(
	ctx context.Context,
	identifier string,
	secret []byte,
	keyTag string,
) error {
	args := m.Called(ctx, identifier, secret, keyTag)
	return args.Error(0)
}

// Load mocks the Load method of CredentialUseCase.
func (m *MockCredentialUseCase) Load(
	ctx context.Context,
	keyTag string,
) (*credentialDomain.Credential, error) {
	args := m.Called(ctx, keyTag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*credentialDomain.Credential), args.Error(1)
}

// Delete mocks the Delete method of CredentialUseCase.
func (m *MockCredentialUseCase) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
