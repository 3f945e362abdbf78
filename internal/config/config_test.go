package config

import (
	"os"
	"path/filepath"
	"testing"

	"rangi/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	t.Setenv("CONFIG_PATH", p)
	Reset()
	t.Cleanup(Reset)
	return p
}

func TestInstallDefaults(t *testing.T) {
	setupConfig(t)

	require.False(t, Installed())
	site, err := Install()
	require.NoError(t, err)
	require.True(t, Installed())

	assert.Equal(t, "Admin", site.DispName)
	assert.Equal(t, 10, site.PPP)
	assert.Equal(t, "%Y %B %d", site.DTFormat)
	assert.Equal(t, utils.CalendarJalali, site.Calendar)
	assert.False(t, site.AutoApproval)
	assert.False(t, site.DisableComments)
	assert.True(t, utils.CheckPassword(site.PwdHash, DefaultAdminPassword))
}

func TestGetBeforeInstall(t *testing.T) {
	setupConfig(t)

	_, err := Get()
	assert.ErrorIs(t, err, ErrNotInstalled)
}

func TestSaveRewritesWholeFile(t *testing.T) {
	p := setupConfig(t)

	_, err := Install()
	require.NoError(t, err)

	site, err := Get()
	require.NoError(t, err)

	updated := *site
	updated.Title = "Weblog"
	updated.PPP = 5
	require.NoError(t, Save(&updated))

	// The cached copy is replaced in the same step.
	got, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "Weblog", got.Title)
	assert.Equal(t, 5, got.PPP)

	// And the file on disk matches after a cold reload.
	Reset()
	got, err = Get()
	require.NoError(t, err)
	assert.Equal(t, "Weblog", got.Title)
	assert.Equal(t, 5, got.PPP)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "Weblog"`)
}
