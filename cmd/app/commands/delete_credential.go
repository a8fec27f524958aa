package commands

import (
	"context"
	"fmt"
	"log/slog"

	credentialUseCase "github.com/allisson/credstore/internal/credential/usecase"
)

// RunDeleteCredential removes the stored credential record. Deleting an
// absent record is a no-op success.
func RunDeleteCredential(
	ctx context.Context,
	useCase credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
) error {
	if err := useCase.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}

	logger.Info("credential deleted")
	return nil
}
