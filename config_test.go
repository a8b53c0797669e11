package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"structhole/layout"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "structhole.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestResolveCachelineFlagWins(t *testing.T) {
	path := writeConfig(t, "[layout]\ncacheline = 32\n")

	got, err := resolveCacheline(true, 128, path)
	require.NoError(t, err)
	require.Equal(t, uint64(128), got)
}

func TestResolveCachelineFromConfig(t *testing.T) {
	path := writeConfig(t, "[layout]\ncacheline = 32\n")

	got, err := resolveCacheline(false, 64, path)
	require.NoError(t, err)
	require.Equal(t, uint64(32), got)
}

func TestResolveCachelineConfigWithoutValue(t *testing.T) {
	path := writeConfig(t, "[layout]\n")

	got, err := resolveCacheline(false, 64, path)
	require.NoError(t, err)
	require.Equal(t, uint64(layout.DefaultCachelineSize), got)
}

func TestResolveCachelineDefault(t *testing.T) {
	got, err := resolveCacheline(false, 64, "")
	require.NoError(t, err)
	require.Equal(t, uint64(layout.DefaultCachelineSize), got)
}

func TestResolveCachelineZeroFlag(t *testing.T) {
	_, err := resolveCacheline(true, 0, "")
	require.Error(t, err)
	require.Equal(t, layout.KindUsage, layout.KindOf(err))
}

func TestResolveCachelineBadConfig(t *testing.T) {
	path := writeConfig(t, "not toml at all {{{")

	_, err := resolveCacheline(false, 64, path)
	require.Error(t, err)
	require.Equal(t, layout.KindUsage, layout.KindOf(err))
}
