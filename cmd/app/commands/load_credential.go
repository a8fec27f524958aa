package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	credentialUseCase "github.com/allisson/credstore/internal/credential/usecase"
)

// RunLoadCredential decrypts the stored credential with the key pair under
// keyTag and writes it in the requested format ("text" or "json").
func RunLoadCredential(
	ctx context.Context,
	useCase credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
	writer io.Writer,
	keyTag string,
	format string,
) error {
	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}

	credential, err := useCase.Load(ctx, keyTag)
	if err != nil {
		return fmt.Errorf("failed to load credential: %w", err)
	}

	if format == "json" {
		output := map[string]string{
			"identifier": credential.Identifier,
			"secret":     string(credential.Secret),
		}
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	}

	if _, err := fmt.Fprintf(writer, "identifier: %s\nsecret: %s\n",
		credential.Identifier, credential.Secret); err != nil {
		return err
	}
	return nil
}
