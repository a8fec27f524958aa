package commands

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"

	keysService "github.com/allisson/credstore/internal/keys/service"
)

// RunGenerateKeyPair generates an RSA-2048 key pair under a tag and writes
// the public half in PEM form. The private half never leaves the store.
func RunGenerateKeyPair(
	ctx context.Context,
	keyManager keysService.KeyManager,
	logger *slog.Logger,
	writer io.Writer,
	tag string,
) error {
	pair, err := keyManager.GenerateKeyPair(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to generate key pair: %w", err)
	}

	logger.Info("key pair generated", slog.String("tag", tag))

	return writePublicKeyPEM(writer, pair.Public)
}

// RunGetPublicKey writes the PEM-encoded public key stored under a tag.
func RunGetPublicKey(
	ctx context.Context,
	keyManager keysService.KeyManager,
	logger *slog.Logger,
	writer io.Writer,
	tag string,
) error {
	pub, err := keyManager.RetrievePublicKey(ctx, tag)
	if err != nil {
		return fmt.Errorf("failed to retrieve public key: %w", err)
	}

	return writePublicKeyPEM(writer, pub)
}

// writePublicKeyPEM encodes the public key as a PEM block and writes it out.
func writePublicKeyPEM(writer io.Writer, pub *rsa.PublicKey) error {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return fmt.Errorf("failed to encode public key: %w", err)
	}

	return pem.Encode(writer, &pem.Block{Type: "PUBLIC KEY", Bytes: der})
}
