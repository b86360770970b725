package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, closeLog, err := Setup(path, "debug")
	require.NoError(t, err)

	logger.Debug().Str("screen", "history").Msg("pushed")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"screen":"history"`)
	require.Contains(t, string(data), `"pushed"`)
}

func TestSetupEmptyPathDisables(t *testing.T) {
	t.Parallel()

	logger, closeLog, err := Setup("", "info")
	require.NoError(t, err)
	require.NotNil(t, closeLog)
	logger.Info().Msg("dropped")
	closeLog()
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "app.log")
	logger, closeLog, err := Setup(path, "warn")
	require.NoError(t, err)

	logger.Info().Msg("quiet")
	logger.Warn().Msg("loud")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "quiet")
	require.Contains(t, string(data), "loud")
}

func TestComponentTagsLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := Component(zerolog.New(&buf), "nav")
	logger.Info().Msg("ready")
	require.Contains(t, buf.String(), `"component":"nav"`)
}
