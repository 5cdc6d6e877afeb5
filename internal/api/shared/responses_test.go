package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"name": "course1"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "course1", body["name"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes message and trace ID", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(SetTraceID(req.Context()))

		RespondWithError(recorder, req, http.StatusNotFound, "Course with id 42 is not found!")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "Course with id 42 is not found!", body.Error)
		assert.Equal(t, GetTraceID(req.Context()), body.TraceID)
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())

		RespondWithError(recorder, req, http.StatusBadRequest, "bad input")

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
		_, present := raw["trace_id"]
		assert.False(t, present)
	})
}
