package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIni = `[digitalocean]
client_id = DO123
api_key = abc123
cache_path = /var/cache/doinv
cache_max_age = 300
`

func TestRead(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "digitalocean.ini")
	require.NoError(t, os.WriteFile(filename, []byte(testIni), 0644))

	cfg, err := Read(filename)
	require.NoError(t, err)

	assert.Equal(t, "DO123", cfg.ClientID)
	assert.Equal(t, "abc123", cfg.APIKey)
	assert.Equal(t, "/var/cache/doinv", cfg.CachePath)
	assert.Equal(t, 300, cfg.CacheMaxAge)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}

func TestReadMissingFile(t *testing.T) {
	cfg, err := Read(filepath.Join(t.TempDir(), "nonexistent.ini"))
	require.NoError(t, err, "a missing settings file is not an error")

	assert.Empty(t, cfg.ClientID)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, ".", cfg.CachePath)
	assert.Equal(t, 0, cfg.CacheMaxAge)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
}

func TestReadPartial(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "digitalocean.ini")
	require.NoError(t, os.WriteFile(filename, []byte("[digitalocean]\nclient_id = DO123\n"), 0644))

	cfg, err := Read(filename)
	require.NoError(t, err)

	assert.Equal(t, "DO123", cfg.ClientID)
	assert.Equal(t, ".", cfg.CachePath)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.doinv", ExpandPath("~/.doinv"))

	t.Setenv("DOINV_DIR", "/opt/doinv")
	assert.Equal(t, "/opt/doinv/cache", ExpandPath("$DOINV_DIR/cache"))
}
