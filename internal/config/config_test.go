package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/flights/search", cfg.APIURL)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, time.UTC, cfg.Location)
	require.Equal(t, ShapeObject, cfg.Stub.Shape)
	require.Equal(t, ":8080", cfg.Stub.Listen)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SKYFINDER_API_URL", "https://flights.example.com/search")
	t.Setenv("SKYFINDER_REQUEST_TIMEOUT", "3s")
	t.Setenv("SKYFINDER_STUB_SHAPE", "list")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "https://flights.example.com/search", cfg.APIURL)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, ShapeList, cfg.Stub.Shape)
}

func TestLoadFlagsWinOverEnv(t *testing.T) {
	t.Setenv("SKYFINDER_API_URL", "https://env.example.com")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("api-url", "", "")
	fs.String("stub-listen", "", "")
	require.NoError(t, fs.Parse([]string{"--api-url", "https://flag.example.com", "--stub-listen", ":9999"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	require.Equal(t, "https://flag.example.com", cfg.APIURL)
	require.Equal(t, ":9999", cfg.Stub.Listen)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyfinder.yaml")
	body := "api_url: https://file.example.com/search\ndisplay_timezone: America/New_York\nstub:\n  delay: 250ms\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("SKYFINDER_CONFIG", path)

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "https://file.example.com/search", cfg.APIURL)
	require.Equal(t, "America/New_York", cfg.Location.String())
	require.Equal(t, 250*time.Millisecond, cfg.Stub.Delay)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"SKYFINDER_REQUEST_TIMEOUT":  "soon",
		"SKYFINDER_DISPLAY_TIMEZONE": "Mars/Olympus",
		"SKYFINDER_STUB_SHAPE":       "tree",
		"SKYFINDER_STUB_DELAY":       "later",
	}
	for env, val := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, val)
			_, err := Load(nil)
			require.Error(t, err)
		})
	}
}
