package service

import (
	"crypto/rand"
	"crypto/rsa"

	cryptoDomain "github.com/allisson/credstore/internal/crypto/domain"
	apperrors "github.com/allisson/credstore/internal/errors"
)

// RSAEncrypter implements Encrypter with RSA PKCS#1 v1.5.
type RSAEncrypter struct{}

// NewRSAEncrypter creates a new RSA encrypter.
func NewRSAEncrypter() *RSAEncrypter {
	return &RSAEncrypter{}
}

// Encrypt encrypts plaintext with pub under PKCS#1 v1.5 padding.
func (e *RSAEncrypter) Encrypt(plaintext []byte, pub *rsa.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrEncryptionFailed, "nil public key")
	}

	if len(plaintext) > cryptoDomain.EncryptionCeiling(pub) {
		return nil, apperrors.Wrapf(
			cryptoDomain.ErrPayloadTooLarge,
			"%d bytes exceeds ceiling of %d", len(plaintext), cryptoDomain.EncryptionCeiling(pub),
		)
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, pub, plaintext)
	if err != nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrEncryptionFailed, err.Error())
	}
	return ciphertext, nil
}

// Decrypt decrypts ciphertext with priv. The underlying padding check makes
// a wrong key or tampered ciphertext fail instead of yielding garbage.
func (e *RSAEncrypter) Decrypt(ciphertext []byte, priv *rsa.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, apperrors.Wrap(cryptoDomain.ErrDecryptionFailed, "nil private key")
	}

	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, priv, ciphertext)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
