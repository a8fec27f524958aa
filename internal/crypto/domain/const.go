// Package domain defines core domain types and errors for asymmetric
// cryptography.
package domain

import (
	"crypto/rsa"
)

// Key generation parameters.
const (
	// RSAKeyBits is the fixed modulus size for generated key pairs.
	RSAKeyBits = 2048

	// pkcs1v15Overhead is the padding overhead of PKCS#1 v1.5 encryption.
	pkcs1v15Overhead = 11
)

// EncryptionCeiling returns the maximum plaintext length encryptable under
// pub with PKCS#1 v1.5 padding. For an RSA-2048 key this is 245 bytes.
// This is a hard ceiling; callers needing larger payloads must layer
// chunking or hybrid encryption themselves.
func EncryptionCeiling(pub *rsa.PublicKey) int {
	return pub.Size() - pkcs1v15Overhead
}
