package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromPathMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	svc := &configService{}
	cfg, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.CatalogPath = "/data/master_catalog.csv"
	cfg.UISettings.CommitDelayMS = 120
	cfg.UISettings.WheelLines = 5
	cfg.UISettings.ShowSizes = true

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestSaveToPathCreatesDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deep", "nested", "config.toml")
	svc := &configService{}

	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestLoadFromPathFloorsInvalidTimings(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `version = 1
catalog_path = "shows.csv"

[ui]
commit_delay_ms = -5
wheel_lines = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	svc := &configService{}
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "shows.csv", cfg.CatalogPath)
	require.Equal(t, 90, cfg.UISettings.CommitDelayMS, "nonsense delay falls back to default")
	require.Equal(t, 3, cfg.UISettings.WheelLines)
}

func TestLoadFromPathBadTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	svc := &configService{}
	_, err := svc.LoadFromPath(path)
	require.Error(t, err)
}
