package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger())

	req := httptest.NewRequest("GET", "/api/health", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.True(t, resp.Ok)
	assert.Empty(t, resp.Error)
	assert.False(t, resp.Time.IsZero())
}
