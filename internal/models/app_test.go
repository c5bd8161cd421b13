package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeValid(t *testing.T) {
	assert.True(t, ThemeLight.Valid())
	assert.True(t, ThemeDark.Valid())
	assert.True(t, ThemeSystem.Valid())
	assert.False(t, Theme("blue").Valid())
	assert.False(t, Theme("").Valid())
}

func TestNewDefaultAppData(t *testing.T) {
	now := time.Now()
	data := NewDefaultAppData("", now)

	assert.Equal(t, DefaultVersion, data.Version)
	assert.NotNil(t, data.Tiles)
	assert.Empty(t, data.Tiles)
	assert.Equal(t, ThemeSystem, data.Settings.Theme)
	assert.Equal(t, DefaultSiteName, data.Settings.SiteName)
	assert.True(t, now.Equal(data.Settings.CreatedAt))
	assert.True(t, now.Equal(data.Settings.UpdatedAt))
}

func TestNewDefaultAppData_CustomSiteName(t *testing.T) {
	data := NewDefaultAppData("My Lab", time.Now())
	assert.Equal(t, "My Lab", data.Settings.SiteName)
}

func TestAppData_JSONShape(t *testing.T) {
	data := NewDefaultAppData("", time.Now())

	raw, err := json.Marshal(data)
	require.NoError(t, err)

	// Формат на диске: camelCase ключи, tiles как массив
	assert.Contains(t, string(raw), `"version":"1.0.0"`)
	assert.Contains(t, string(raw), `"tiles":[]`)
	assert.Contains(t, string(raw), `"siteName":"Homelabster"`)
	assert.Contains(t, string(raw), `"theme":"system"`)
}
