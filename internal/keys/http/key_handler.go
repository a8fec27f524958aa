// Package http provides HTTP handlers for key management operations.
package http

import (
	"crypto/x509"
	"encoding/pem"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/credstore/internal/httputil"
	"github.com/allisson/credstore/internal/keys/http/dto"
	keysService "github.com/allisson/credstore/internal/keys/service"
	customValidation "github.com/allisson/credstore/internal/validation"
)

// KeyHandler handles HTTP requests for key management operations.
type KeyHandler struct {
	keyManager keysService.KeyManager
	logger     *slog.Logger
}

// NewKeyHandler creates a new key handler with required dependencies.
func NewKeyHandler(keyManager keysService.KeyManager, logger *slog.Logger) *KeyHandler {
	return &KeyHandler{
		keyManager: keyManager,
		logger:     logger,
	}
}

// tagParam extracts and validates the tag URL parameter. Returns an empty
// string after writing the error response when validation fails.
func (h *KeyHandler) tagParam(c *gin.Context) string {
	tag := c.Param("tag")
	if err := customValidation.ValidateTag(tag); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return ""
	}
	return tag
}

// SaveHandler stores key material under a tag, replacing any existing entry.
// PUT /v1/keys/:tag
func (h *KeyHandler) SaveHandler(c *gin.Context) {
	tag := h.tagParam(c)
	if tag == "" {
		return
	}

	var req dto.SaveKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.keyManager.Save(c.Request.Context(), tag, req.Material); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"tag": tag})
}

// GetHandler returns the key material stored under a tag.
// GET /v1/keys/:tag
func (h *KeyHandler) GetHandler(c *gin.Context) {
	tag := h.tagParam(c)
	if tag == "" {
		return
	}

	material, err := h.keyManager.Load(c.Request.Context(), tag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.KeyResponse{Tag: tag, Material: material})
}

// UpdateHandler replaces the material of an existing entry; it fails with
// 404 when the tag is absent rather than creating one.
// POST /v1/keys/:tag
func (h *KeyHandler) UpdateHandler(c *gin.Context) {
	tag := h.tagParam(c)
	if tag == "" {
		return
	}

	var req dto.SaveKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	if err := h.keyManager.Update(c.Request.Context(), tag, req.Material); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tag": tag})
}

// DeleteHandler removes the entry under a tag. Deleting an absent entry
// succeeds, so the response is 204 either way.
// DELETE /v1/keys/:tag
func (h *KeyHandler) DeleteHandler(c *gin.Context) {
	tag := h.tagParam(c)
	if tag == "" {
		return
	}

	if err := h.keyManager.Delete(c.Request.Context(), tag); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// GenerateKeyPairHandler generates a fresh RSA-2048 key pair under a tag and
// returns the public half in PEM form. The private half never leaves the
// store.
// POST /v1/keypairs/:tag
func (h *KeyHandler) GenerateKeyPairHandler(c *gin.Context) {
	tag := h.tagParam(c)
	if tag == "" {
		return
	}

	pair, err := h.keyManager.GenerateKeyPair(c.Request.Context(), tag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	der, err := x509.MarshalPKIXPublicKey(pair.Public)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.KeyPairResponse{
		Tag:       tag,
		PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	})
}

// GetPublicKeyHandler returns the PEM-encoded public key stored under a tag.
// GET /v1/keypairs/:tag/public
func (h *KeyHandler) GetPublicKeyHandler(c *gin.Context) {
	tag := h.tagParam(c)
	if tag == "" {
		return
	}

	pub, err := h.keyManager.RetrievePublicKey(c.Request.Context(), tag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.KeyPairResponse{
		Tag:       tag,
		PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
	})
}
