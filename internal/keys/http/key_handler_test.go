package http

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/credstore/internal/errors"
	keysDomain "github.com/allisson/credstore/internal/keys/domain"
	keysServiceMocks "github.com/allisson/credstore/internal/keys/service/mocks"
)

func newTestRouter(handler *KeyHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/v1/keys/:tag", handler.SaveHandler)
	router.GET("/v1/keys/:tag", handler.GetHandler)
	router.POST("/v1/keys/:tag", handler.UpdateHandler)
	router.DELETE("/v1/keys/:tag", handler.DeleteHandler)
	router.POST("/v1/keypairs/:tag", handler.GenerateKeyPairHandler)
	router.GET("/v1/keypairs/:tag/public", handler.GetPublicKeyHandler)
	return router
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestKeyHandler_Save(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	mockKeyManager.On("Save", mock.Anything, "app-key", []byte("material")).
		Return(nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPut,
		"/v1/keys/app-key",
		jsonBody(t, map[string]any{"material": []byte("material")}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	mockKeyManager.AssertExpectations(t)
}

func TestKeyHandler_SaveInvalidTag(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPut,
		"/v1/keys/-bad",
		jsonBody(t, map[string]any{"material": []byte("material")}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	mockKeyManager.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestKeyHandler_SaveEmptyMaterial(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPut,
		"/v1/keys/app-key",
		jsonBody(t, map[string]any{"material": []byte{}}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKeyHandler_Get(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	mockKeyManager.On("Load", mock.Anything, "app-key").
		Return([]byte("material"), nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/keys/app-key", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "app-key")
	mockKeyManager.AssertExpectations(t)
}

func TestKeyHandler_GetAbsent(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	mockKeyManager.On("Load", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/keys/missing", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockKeyManager.AssertExpectations(t)
}

func TestKeyHandler_UpdateAbsent(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	mockKeyManager.On("Update", mock.Anything, "missing", []byte("v2")).
		Return(apperrors.ErrNotFound).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/v1/keys/missing",
		jsonBody(t, map[string]any{"material": []byte("v2")}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockKeyManager.AssertExpectations(t)
}

func TestKeyHandler_Delete(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	mockKeyManager.On("Delete", mock.Anything, "app-key").
		Return(nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/keys/app-key", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockKeyManager.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeyPair(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)

	pair := &keysDomain.KeyPair{Tag: "user-key", Private: priv, Public: &priv.PublicKey}
	mockKeyManager.On("GenerateKeyPair", mock.Anything, "user-key").
		Return(pair, nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/keypairs/user-key", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "PUBLIC KEY")
	// The private half must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "PRIVATE")
	mockKeyManager.AssertExpectations(t)
}

func TestKeyHandler_GetPublicKey(t *testing.T) {
	mockKeyManager := &keysServiceMocks.MockKeyManager{}
	router := newTestRouter(NewKeyHandler(mockKeyManager, nil))

	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)

	mockKeyManager.On("RetrievePublicKey", mock.Anything, "user-key").
		Return(&priv.PublicKey, nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/keypairs/user-key/public", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PUBLIC KEY")
	mockKeyManager.AssertExpectations(t)
}
