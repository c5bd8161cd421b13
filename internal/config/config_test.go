package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("HOMELABSTER_ADDR", "")
	t.Setenv("HOMELABSTER_DATA_DIR", "")
	t.Setenv("HOMELABSTER_IMAGES_DIR", "")
	t.Setenv("HOMELABSTER_ENV", "")

	cfg := Load()

	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, DefaultAdminUsername, cfg.AdminUsername)
	assert.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, DefaultImagesDir, cfg.ImagesDir)
	assert.False(t, cfg.Production)
	assert.True(t, cfg.InsecureSecret())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "real-secret")
	t.Setenv("ADMIN_USERNAME", "operator")
	t.Setenv("ADMIN_PASSWORD", "s3cr3t")
	t.Setenv("HOMELABSTER_ADDR", ":9090")
	t.Setenv("HOMELABSTER_DATA_DIR", "/data/config")
	t.Setenv("HOMELABSTER_IMAGES_DIR", "/data/images")
	t.Setenv("HOMELABSTER_ENV", "production")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "real-secret", cfg.JWTSecret)
	assert.Equal(t, "operator", cfg.AdminUsername)
	assert.Equal(t, "s3cr3t", cfg.AdminPassword)
	assert.Equal(t, "/data/config", cfg.DataDir)
	assert.Equal(t, "/data/images", cfg.ImagesDir)
	assert.True(t, cfg.Production)
	assert.False(t, cfg.InsecureSecret())
}

func TestLoad_EmptyEnvFallsBackToDefault(t *testing.T) {
	// Пустая переменная эквивалентна незаданной
	t.Setenv("ADMIN_PASSWORD", "")

	cfg := Load()
	assert.Equal(t, DefaultAdminPassword, cfg.AdminPassword)
}
