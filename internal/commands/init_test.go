package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadbook-dev/roadbook/internal/config"
	"github.com/roadbook-dev/roadbook/internal/session"
)

func TestRunInit_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "books")

	require.NoError(t, runInit(dir, "Acme Haulage"))

	cfg, err := config.Load(filepath.Join(dir, session.ConfigFile))
	require.NoError(t, err)
	assert.Equal(t, "Acme Haulage", cfg.Company.Name)
	assert.Empty(t, cfg.Shipments)
	assert.Empty(t, cfg.Advances)

	_, err = os.Stat(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
}

func TestRunInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Haulage"))

	err := runInit(dir, "Other Co")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitializedDirOpensAsEmptySession(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Haulage"))

	s, err := session.Open(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Store.Expenses())
	assert.Empty(t, s.Advances())
}
