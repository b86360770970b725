package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadReadsFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nlocale = \"es\"\n"), 0o644))
	t.Setenv("LAZYNAV_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "es", cfg.UI.Locale)
	require.NotEmpty(t, cfg.History.Path)
	require.Equal(t, "info", cfg.Log.Level)

	t.Setenv("LAZYNAV_UI_LOCALE", "en")
	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "en", cfg.UI.Locale)
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("LAZYNAV_CONFIG", path)

	in := Config{
		History: HistoryConfig{Path: "/tmp/history.db"},
		UI:      UIConfig{Locale: "es"},
		Log:     LogConfig{Path: "/tmp/lazynav.log", Level: "debug"},
	}
	require.NoError(t, Save(in))

	out, err := Load()
	require.NoError(t, err)
	require.Equal(t, in, out)
}
