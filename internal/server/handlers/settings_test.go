package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/homelabster/internal/models"
	"github.com/iudanet/homelabster/internal/server/storage"
	"github.com/iudanet/homelabster/pkg/api"
)

func TestSettings_Get(t *testing.T) {
	h := NewSettingsHandler(testLogger(), newMockDocumentStore())

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var settings models.Settings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	assert.Equal(t, models.ThemeSystem, settings.Theme)
	assert.Equal(t, models.DefaultSiteName, settings.SiteName)
}

func TestSettings_Update(t *testing.T) {
	store := newMockDocumentStore()
	h := NewSettingsHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/settings",
		bytes.NewReader([]byte(`{"theme": "dark"}`))))

	require.Equal(t, http.StatusOK, rec.Code)

	var settings models.Settings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	assert.Equal(t, models.ThemeDark, settings.Theme)
	assert.Equal(t, models.DefaultSiteName, settings.SiteName, "siteName not in patch, stays unchanged")
}

func TestSettings_Update_InvalidTheme(t *testing.T) {
	h := NewSettingsHandler(testLogger(), newMockDocumentStore())

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/settings",
		bytes.NewReader([]byte(`{"theme": "blue"}`))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Theme must be one of light, dark or system", resp.Message)
}

func TestSettings_Update_StorageError(t *testing.T) {
	store := newMockDocumentStore()
	store.err = storage.ErrStorageUnavailable
	h := NewSettingsHandler(testLogger(), store)

	rec := httptest.NewRecorder()
	h.Update(rec, httptest.NewRequest(http.MethodPut, "/api/settings",
		bytes.NewReader([]byte(`{"theme": "dark"}`))))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
