package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-api/pkg/e"
	"github.com/DRSN-tech/catalog-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("API_VERSION", "")
	t.Setenv("DEBUG", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	assert.Equal(t, "Catalog API", cfg.App.AppName)
	assert.Equal(t, "v1", cfg.App.APIVersion)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, 5*time.Second, cfg.Http.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Http.WriteTimeout)
	assert.Equal(t, 60*time.Second, cfg.Http.IdleTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_NAME", "Shop API")
	t.Setenv("API_VERSION", "v2")
	t.Setenv("DEBUG", "false")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")

	cfg, err := Load(logger.NewSlogLogger())
	require.NoError(t, err)

	assert.Equal(t, "Shop API", cfg.App.AppName)
	assert.Equal(t, "v2", cfg.App.APIVersion)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "9090", cfg.Http.Port)
	assert.Equal(t, 2*time.Second, cfg.Http.ReadTimeout)
}

func TestLoad_InvalidDebug(t *testing.T) {
	t.Setenv("DEBUG", "not-a-bool")

	_, err := Load(logger.NewSlogLogger())
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("DEBUG", "")
	t.Setenv("HTTP_WRITE_TIMEOUT", "soon")

	_, err := Load(logger.NewSlogLogger())
	assert.Error(t, err)
}
