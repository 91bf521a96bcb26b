package params

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_Defaults(t *testing.T) {
	for _, key := range []string{"ICONSYNC_HOST", "ICONSYNC_USER", "ICONSYNC_TOKEN", "ICONSYNC_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestLoadEnv_Overrides(t *testing.T) {
	t.Setenv("ICONSYNC_HOST", "http://localhost:3003")
	t.Setenv("ICONSYNC_USER", "dev@example.com")
	t.Setenv("ICONSYNC_TOKEN", "secret")
	t.Setenv("ICONSYNC_CONFIG", "/work/iconsync.json")
	t.Setenv("ICONSYNC_TIMEOUT", "15s")
	t.Setenv("ICONSYNC_HISTORY_FILE", "/state/history.bolt")

	cfg, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3003", cfg.Host)
	assert.Equal(t, "dev@example.com", cfg.User)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, "/work/iconsync.json", cfg.ConfigFile)
	assert.Equal(t, "/state/history.bolt", cfg.HistoryDB)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestLoadEnv_InvalidTimeout(t *testing.T) {
	t.Setenv("ICONSYNC_TIMEOUT", "soon")

	_, err := LoadEnv()
	require.Error(t, err)
}
