package domain

import (
	"github.com/allisson/credstore/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors to
// provide context for cryptographic failures.
var (
	// ErrKeyGenerationFailed indicates a fresh key pair could not be produced.
	// Callers must not assume partial state was created.
	ErrKeyGenerationFailed = errors.Wrap(errors.ErrCryptoFailure, "key generation failed")

	// ErrPayloadTooLarge indicates the plaintext exceeds the key's encryption
	// ceiling for the padding scheme (245 bytes for RSA-2048/PKCS#1 v1.5).
	ErrPayloadTooLarge = errors.Wrap(errors.ErrCryptoFailure, "payload exceeds encryption ceiling")

	// ErrEncryptionFailed indicates the public-key encryption operation failed.
	ErrEncryptionFailed = errors.Wrap(errors.ErrCryptoFailure, "encryption failed")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong private key for the ciphertext
	//   - Malformed or truncated ciphertext
	//
	// The specific cause is not disclosed to prevent information leakage.
	ErrDecryptionFailed = errors.Wrap(errors.ErrCryptoFailure, "decryption failed")
)
