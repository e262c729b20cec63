package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, req, http.StatusOK, MessageResponse{Message: "Account deleted"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message": "Account deleted"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Run("includes_trace_id_when_present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks/42", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		rec := httptest.NewRecorder()

		RespondWithError(rec, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Task not found", resp.Error)
		assert.NotEmpty(t, resp.TraceID)
	})

	t.Run("omits_trace_id_when_absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tasks/42", nil)
		rec := httptest.NewRecorder()

		RespondWithError(rec, req, http.StatusNotFound, "Task not found")

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "trace_id")
	})

	t.Run("status_code_never_serialized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		RespondWithError(rec, req, http.StatusBadRequest, "Invalid request format")

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "Code")
		assert.NotContains(t, raw, "code")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
	rec := httptest.NewRecorder()

	internal := errors.New("store exploded at line 7")
	RespondWithErrorAndLog(rec, req, http.StatusInternalServerError, "An unexpected error occurred", internal)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// The raw error text must never reach the client.
	assert.NotContains(t, rec.Body.String(), "store exploded")

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "An unexpected error occurred", resp.Error)
}
