package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifySkippedWithoutCredentials(t *testing.T) {
	ctrl := NewTelegramController(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/telegram", strings.NewReader(`{"productId":"kids-set-001"}`))
	w := httptest.NewRecorder()
	ctrl.Notify(w, req)

	require.Equal(t, http.StatusOK, w.Code, "missing credentials means notifications are disabled, not broken")

	var resp telegramResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Skipped)
}

func TestNotifyMethodNotAllowed(t *testing.T) {
	ctrl := NewTelegramController(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/telegram", nil)
	w := httptest.NewRecorder()
	ctrl.Notify(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
