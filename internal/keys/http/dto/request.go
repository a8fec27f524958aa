// Package dto provides data transfer objects for HTTP request and response
// handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// SaveKeyRequest contains the material for saving or updating a key entry.
// The tag is extracted from the URL parameter, not the request body.
type SaveKeyRequest struct {
	// Material is base64-encoded on the wire via JSON []byte encoding.
	Material []byte `json:"material" binding:"required"`
}

// Validate checks if the save key request is valid.
func (r *SaveKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Material,
			validation.Required,
			validation.Length(1, 0), // At least 1 byte
		),
	)
}
