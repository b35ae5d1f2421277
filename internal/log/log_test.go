package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Setup("debug", ""))
	require.False(t, Logger.Core().Enabled(-1))

	require.Error(t, Setup("loud", "stderr"))

	path := filepath.Join(t.TempDir(), "skyfinder.log")
	require.NoError(t, Setup("warn", path))
	Logger.Info("dropped")
	Logger.Warn("kept")
	_ = Logger.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "kept")
	require.NotContains(t, string(b), "dropped")
	require.Contains(t, string(b), "skyfinder")
}
