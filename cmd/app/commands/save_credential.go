package commands

import (
	"context"
	"fmt"
	"log/slog"

	credentialUseCase "github.com/allisson/credstore/internal/credential/usecase"
)

// RunSaveCredential encrypts the secret with the key pair under keyTag and
// stores the credential record.
func RunSaveCredential(
	ctx context.Context,
	useCase credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
	identifier string,
	secret string,
	keyTag string,
) error {
	if identifier == "" {
		return fmt.Errorf("identifier must not be empty")
	}
	if secret == "" {
		return fmt.Errorf("secret must not be empty")
	}

	if err := useCase.Save(ctx, identifier, []byte(secret), keyTag); err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}

	logger.Info("credential saved",
		slog.String("identifier", identifier),
		slog.String("key_tag", keyTag),
	)
	return nil
}
