package commands

import (
	"context"
	"fmt"
	"log/slog"

	keysService "github.com/allisson/credstore/internal/keys/service"
)

// RunDeleteKey removes the key material stored under a tag. Deleting an
// absent entry is a no-op success.
func RunDeleteKey(
	ctx context.Context,
	keyManager keysService.KeyManager,
	logger *slog.Logger,
	tag string,
) error {
	if err := keyManager.Delete(ctx, tag); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	logger.Info("key deleted", slog.String("tag", tag))
	return nil
}
