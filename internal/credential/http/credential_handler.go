// Package http provides HTTP handlers for credential operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/credstore/internal/credential/http/dto"
	credentialUseCase "github.com/allisson/credstore/internal/credential/usecase"
	"github.com/allisson/credstore/internal/httputil"
	customValidation "github.com/allisson/credstore/internal/validation"
)

// CredentialHandler handles HTTP requests for credential operations.
type CredentialHandler struct {
	credentialUseCase credentialUseCase.CredentialUseCase
	logger            *slog.Logger
}

// NewCredentialHandler creates a new credential handler with required dependencies.
func NewCredentialHandler(
	uc credentialUseCase.CredentialUseCase,
	logger *slog.Logger,
) *CredentialHandler {
	return &CredentialHandler{
		credentialUseCase: uc,
		logger:            logger,
	}
}

// SaveHandler encrypts and stores a credential record.
// POST /v1/credentials
func (h *CredentialHandler) SaveHandler(c *gin.Context) {
	var req dto.SaveCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.credentialUseCase.Save(c.Request.Context(), req.Identifier, req.Secret, req.KeyTag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"identifier": req.Identifier})
}

// LoadHandler decrypts and returns the stored credential using the key pair
// under key_tag.
// GET /v1/credentials/:key_tag
func (h *CredentialHandler) LoadHandler(c *gin.Context) {
	keyTag := c.Param("key_tag")
	if err := customValidation.ValidateTag(keyTag); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	credential, err := h.credentialUseCase.Load(c.Request.Context(), keyTag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CredentialResponse{
		Identifier: credential.Identifier,
		Secret:     credential.Secret,
	})
}

// DeleteHandler removes the stored credential record. Deleting an absent
// record succeeds, so the response is 204 either way.
// DELETE /v1/credentials
func (h *CredentialHandler) DeleteHandler(c *gin.Context) {
	if err := h.credentialUseCase.Delete(c.Request.Context()); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
