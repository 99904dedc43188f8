package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks the override variables so ambient shell state cannot leak
// into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("AUCTION_LEDGER", "")
	t.Setenv("AUCTION_DB", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "memory", cfg.Ledger)
	require.Equal(t, 5*time.Second, cfg.LockTimeout)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9090\"\nledger: bolt\nbolt_path: /tmp/test.db\nlock_timeout: 2s\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Addr)
	require.Equal(t, "bolt", cfg.Ledger)
	require.Equal(t, "/tmp/test.db", cfg.BoltPath)
	require.Equal(t, 2*time.Second, cfg.LockTimeout)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("AUCTION_LEDGER", "bolt")
	t.Setenv("AUCTION_DB", "override.db")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Addr)
	require.Equal(t, "bolt", cfg.Ledger)
	require.Equal(t, "override.db", cfg.BoltPath)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("AUCTION_LEDGER", "postgres")
	_, err := Load("")
	require.Error(t, err)
}
