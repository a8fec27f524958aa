package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	credentialDomain "github.com/allisson/credstore/internal/credential/domain"
	credentialUseCaseMocks "github.com/allisson/credstore/internal/credential/usecase/mocks"
	apperrors "github.com/allisson/credstore/internal/errors"
)

func newTestRouter(handler *CredentialHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/v1/credentials", handler.SaveHandler)
	router.GET("/v1/credentials/:key_tag", handler.LoadHandler)
	router.DELETE("/v1/credentials", handler.DeleteHandler)
	return router
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestCredentialHandler_Save(t *testing.T) {
	mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
	router := newTestRouter(NewCredentialHandler(mockUseCase, nil))

	mockUseCase.On("Save", mock.Anything, "alice", []byte("s3cr3t"), "user-key").
		Return(nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/v1/credentials",
		jsonBody(t, map[string]any{
			"identifier": "alice",
			"secret":     []byte("s3cr3t"),
			"key_tag":    "user-key",
		}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
	mockUseCase.AssertExpectations(t)
}

func TestCredentialHandler_SaveMissingFields(t *testing.T) {
	mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
	router := newTestRouter(NewCredentialHandler(mockUseCase, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/v1/credentials",
		jsonBody(t, map[string]any{"identifier": "alice"}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockUseCase.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCredentialHandler_SaveMissingKey(t *testing.T) {
	mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
	router := newTestRouter(NewCredentialHandler(mockUseCase, nil))

	mockUseCase.On("Save", mock.Anything, "alice", []byte("s3cr3t"), "missing").
		Return(apperrors.Wrap(apperrors.ErrNotFound, "public key not found")).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodPost,
		"/v1/credentials",
		jsonBody(t, map[string]any{
			"identifier": "alice",
			"secret":     []byte("s3cr3t"),
			"key_tag":    "missing",
		}),
	)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCredentialHandler_Load(t *testing.T) {
	mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
	router := newTestRouter(NewCredentialHandler(mockUseCase, nil))

	credential := &credentialDomain.Credential{Identifier: "alice", Secret: []byte("s3cr3t")}
	mockUseCase.On("Load", mock.Anything, "user-key").
		Return(credential, nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/credentials/user-key", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Identifier string `json:"identifier"`
		Secret     []byte `json:"secret"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Identifier)
	assert.Equal(t, []byte("s3cr3t"), resp.Secret)
	mockUseCase.AssertExpectations(t)
}

func TestCredentialHandler_LoadAbsent(t *testing.T) {
	mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
	router := newTestRouter(NewCredentialHandler(mockUseCase, nil))

	mockUseCase.On("Load", mock.Anything, "user-key").
		Return(nil, credentialDomain.ErrCredentialNotFound).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/credentials/user-key", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	mockUseCase.AssertExpectations(t)
}

func TestCredentialHandler_Delete(t *testing.T) {
	mockUseCase := &credentialUseCaseMocks.MockCredentialUseCase{}
	router := newTestRouter(NewCredentialHandler(mockUseCase, nil))

	mockUseCase.On("Delete", mock.Anything).
		Return(nil).
		Once()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/credentials", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockUseCase.AssertExpectations(t)
}
