package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	keysService "github.com/allisson/credstore/internal/keys/service"
)

// RunSaveKey stores base64-encoded key material under a tag, replacing any
// existing entry.
func RunSaveKey(
	ctx context.Context,
	keyManager keysService.KeyManager,
	logger *slog.Logger,
	tag string,
	materialB64 string,
) error {
	material, err := base64.StdEncoding.DecodeString(materialB64)
	if err != nil {
		return fmt.Errorf("invalid base64 key material: %w", err)
	}
	if len(material) == 0 {
		return fmt.Errorf("key material must not be empty")
	}

	if err := keyManager.Save(ctx, tag, material); err != nil {
		return fmt.Errorf("failed to save key: %w", err)
	}

	logger.Info("key saved", slog.String("tag", tag))
	return nil
}
