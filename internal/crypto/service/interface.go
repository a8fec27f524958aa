// Package service provides the asymmetric encryption service used to protect
// credential payloads. The implementation is stateless; every call is pure
// given (data, key).
package service

import (
	"crypto/rsa"
)

// Encrypter performs public-key encryption and private-key decryption of
// opaque payloads.
type Encrypter interface {
	// Encrypt applies PKCS#1 v1.5 padding and encrypts plaintext with pub.
	// Fails when plaintext exceeds the key's encryption ceiling.
	Encrypt(plaintext []byte, pub *rsa.PublicKey) ([]byte, error)

	// Decrypt is the exact inverse of Encrypt for the matching key pair.
	// Fails, rather than returning garbage, for a mismatched key or
	// malformed ciphertext.
	Decrypt(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error)
}
