package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigService()

	cfg, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "hexview", "config.toml")

	want := &Config{
		BytesPerRow: 32,
		GroupBytes:  4,
		UISettings: UISettings{
			ShowGlyphPane:   false,
			ShowPositionBar: true,
		},
	}
	require.NoError(t, cs.SaveToPath(want, path))

	got, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadClampsValues(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	content := "bytes_per_row = 500\ngroup_bytes = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(64), cfg.BytesPerRow)
	assert.Equal(t, uint32(1), cfg.GroupBytes)
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("bytes_per_row = ["), 0o644))

	_, err := cs.LoadFromPath(path)
	assert.Error(t, err)
}
