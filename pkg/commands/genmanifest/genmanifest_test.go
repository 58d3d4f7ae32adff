package genmanifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pipstrap/pkg/commands/genmanifest"
	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"github.com/arthur-debert/pipstrap/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenManifestWritesLoadableDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.toml")

	result, err := genmanifest.GenManifest(genmanifest.GenManifestOptions{Path: path})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
}

func TestGenManifestRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	_, err := genmanifest.GenManifest(genmanifest.GenManifestOptions{Path: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	// --force overwrites
	_, err = genmanifest.GenManifest(genmanifest.GenManifestOptions{Path: path, Force: true})
	require.NoError(t, err)
}

func TestGenManifestDefaultsToConfigDir(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)

	result, err := genmanifest.GenManifest(genmanifest.GenManifestOptions{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, paths.ManifestFileName), result.Path)

	_, err = os.Stat(result.Path)
	assert.NoError(t, err)
}
