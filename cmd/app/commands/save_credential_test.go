package commands

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialUseCaseMocks "github.com/allisson/credstore/internal/credential/usecase/mocks"
)

func TestRunSaveCredential(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("success", func(t *testing.T) {
		mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
		mockUseCase.On("Save", ctx, "alice", []byte("s3cr3t"), "user-key").Return(nil)

		err := RunSaveCredential(ctx, mockUseCase, logger, "alice", "s3cr3t", "user-key")
		require.NoError(t, err)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("empty-identifier", func(t *testing.T) {
		mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
		err := RunSaveCredential(ctx, mockUseCase, logger, "", "s3cr3t", "user-key")
		require.Error(t, err)
		mockUseCase.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty-secret", func(t *testing.T) {
		mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
		err := RunSaveCredential(ctx, mockUseCase, logger, "alice", "", "user-key")
		require.Error(t, err)
	})
}
