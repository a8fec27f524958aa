// Package dto provides data transfer objects for HTTP request and response
// handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/credstore/internal/validation"
)

// SaveCredentialRequest contains the credential to protect and the tag of the
// key pair used to encrypt it.
type SaveCredentialRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Secret     []byte `json:"secret" binding:"required"`
	KeyTag     string `json:"key_tag" binding:"required"`
}

// Validate checks if the save credential request is valid.
func (r *SaveCredentialRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Identifier, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Secret, validation.Required, validation.Length(1, 0)),
		validation.Field(&r.KeyTag, customValidation.TagRule...),
	)
}
