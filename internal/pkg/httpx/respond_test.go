package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocadastro/internal/domain"
	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_Validation(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users", nil)

	Error(rec, req, logger.NewLoggerWithWriter("debug", io.Discard), apperror.NewValidationError([]string{"a", "b"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	body := decodeError(t, rec)
	assert.Equal(t, 400, body.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Category)
	assert.Equal(t, "a", body.Message)
	assert.Equal(t, []string{"a", "b"}, body.Details)
}

func TestError_InternalDoesNotLeakCause(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Error(rec, req, nil, apperror.NewInternalError("falha", errors.New("segredo do banco")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "segredo")
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Category)
	assert.Nil(t, body.Details)
	assert.NotContains(t, rec.Body.String(), "details")
}

func TestJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, nil, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
