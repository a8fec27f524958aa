package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/credstore/internal/keys/service/mocks"
)

// passthroughTxManager runs the function without a real transaction and
// records how many times it was entered.
type passthroughTxManager struct {
	calls int
	err   error
}

func (m *passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

func TestKeyManagerWithTx_SaveRunsInTx(t *testing.T) {
	inner := &mocks.MockKeyManager{}
	txManager := &passthroughTxManager{}
	manager := NewKeyManagerWithTx(inner, txManager)

	inner.On("Save", mock.Anything, "app-key", []byte("material")).Return(nil).Once()

	err := manager.Save(context.Background(), "app-key", []byte("material"))

	require.NoError(t, err)
	assert.Equal(t, 1, txManager.calls)
	inner.AssertExpectations(t)
}

func TestKeyManagerWithTx_GenerateKeyPairRunsInTx(t *testing.T) {
	inner := &mocks.MockKeyManager{}
	txManager := &passthroughTxManager{}
	manager := NewKeyManagerWithTx(inner, txManager)

	inner.On("GenerateKeyPair", mock.Anything, "user-key").Return(nil, errors.New("boom")).Once()

	pair, err := manager.GenerateKeyPair(context.Background(), "user-key")

	require.Error(t, err)
	assert.Nil(t, pair)
	assert.Equal(t, 1, txManager.calls)
	inner.AssertExpectations(t)
}

func TestKeyManagerWithTx_LoadBypassesTx(t *testing.T) {
	inner := &mocks.MockKeyManager{}
	txManager := &passthroughTxManager{}
	manager := NewKeyManagerWithTx(inner, txManager)

	inner.On("Load", mock.Anything, "app-key").Return([]byte("material"), nil).Once()

	material, err := manager.Load(context.Background(), "app-key")

	require.NoError(t, err)
	assert.Equal(t, []byte("material"), material)
	assert.Zero(t, txManager.calls)
	inner.AssertExpectations(t)
}

func TestKeyManagerWithTx_TxFailureSurfaces(t *testing.T) {
	inner := &mocks.MockKeyManager{}
	txManager := &passthroughTxManager{err: errors.New("begin failed")}
	manager := NewKeyManagerWithTx(inner, txManager)

	err := manager.Save(context.Background(), "app-key", []byte("material"))

	require.Error(t, err)
	inner.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}
