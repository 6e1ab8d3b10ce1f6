package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strmsync/strmsync/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "./media", config.MediaRoot)
	assert.Equal(t, time.Hour, config.Interval)
	assert.Equal(t, []string{"movies", "shows"}, config.Libraries)
	assert.Equal(t, "info", config.LogLevel)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("STRMSYNC_UPSTREAM_URL", "http://upstream/api")
	t.Setenv("STRMSYNC_UPSTREAM_TOKEN", "secret")
	t.Setenv("STRMSYNC_MEDIA_ROOT", "/srv/media")
	t.Setenv("STRMSYNC_INTERVAL", "30m")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://upstream/api", config.UpstreamURL)
	assert.Equal(t, "secret", config.UpstreamToken)
	assert.Equal(t, "/srv/media", config.MediaRoot)
	assert.Equal(t, 30*time.Minute, config.Interval)
}

func TestValidateRequiresUpstream(t *testing.T) {
	config := &Config{}
	err := config.Validate()
	require.Error(t, err)
	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)

	config.UpstreamURL = "http://upstream/api"
	err = config.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTokenRequired)

	config.UpstreamToken = "secret"
	assert.NoError(t, config.Validate())
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Format: "json", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "yaml", "debug")

	assert.True(t, config.Verbose)
	assert.False(t, config.Quiet)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "debug", config.LogLevel)

	// Empty flag values do not clobber existing settings
	config.UpdateFromFlags(false, false, false, "", "")
	assert.Equal(t, "yaml", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
}
