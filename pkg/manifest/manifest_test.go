package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	assert.Equal(t, "python", m.Python)
	assert.Equal(t, "pip", m.Pip)
	assert.Equal(t, "record.txt", m.Record)
	assert.Equal(t, []string{"setuptools-scm"}, m.BuildRequires)
	assert.Equal(t, []string{manifest.PlatformPosix, manifest.PlatformWindows}, m.Platforms())
}

func TestDefaultManifestRequirements(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	posix, err := m.RequirementsFor(manifest.PlatformPosix)
	require.NoError(t, err)
	windows, err := m.RequirementsFor(manifest.PlatformWindows)
	require.NoError(t, err)

	// Non-empty with no duplicate canonical names on either platform
	assert.NotEmpty(t, posix)
	assert.NotEmpty(t, windows)
	for _, specs := range [][]manifest.Spec{posix, windows} {
		seen := make(map[string]bool)
		for _, s := range specs {
			assert.False(t, seen[s.CanonicalName()], "duplicate %s", s.Name)
			seen[s.CanonicalName()] = true
		}
	}

	// The pinned versions must survive parsing exactly
	assert.Contains(t, render(posix), "scipy==1.4.1")
	assert.Contains(t, render(posix), "cattrs==1.0.0rc0")
	assert.Contains(t, render(posix), "opencv-python-headless==4.2.0.34")
	assert.Contains(t, render(posix), "PySide2>=5.12.0,<=5.14.1")

	// The posix set carries extras the windows set never had
	assert.Contains(t, render(posix), "seaborn")
	assert.Contains(t, render(posix), "scikit-video")
	assert.Contains(t, render(posix), "pykalman==0.9.5")
	assert.NotContains(t, render(windows), "seaborn")
	assert.NotContains(t, render(windows), "scikit-video")
	assert.NotContains(t, render(windows), "pykalman==0.9.5")

	// The windows set pins differently
	assert.Contains(t, render(windows), "opencv-python-headless==4.1.2.30")
}

func render(specs []manifest.Spec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = s.String()
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		manifest manifest.Manifest
		wantCode errors.ErrorCode
	}{
		{
			name:     "no requirements tables",
			manifest: manifest.Manifest{},
			wantCode: errors.ErrManifestInvalid,
		},
		{
			name: "empty platform set",
			manifest: manifest.Manifest{
				Requirements: map[string][]string{"posix": {}},
			},
			wantCode: errors.ErrManifestInvalid,
		},
		{
			name: "duplicate canonical names",
			manifest: manifest.Manifest{
				Requirements: map[string][]string{
					"posix": {"PySide2>=5.12.0", "pyside2==5.14.1"},
				},
			},
			wantCode: errors.ErrSpecDuplicate,
		},
		{
			name: "invalid constraint",
			manifest: manifest.Manifest{
				Requirements: map[string][]string{
					"posix": {"scipy=1.4.1"},
				},
			},
			wantCode: errors.ErrSpecInvalid,
		},
		{
			name: "invalid build requirement",
			manifest: manifest.Manifest{
				Requirements:  map[string][]string{"posix": {"scipy==1.4.1"}},
				BuildRequires: []string{"setuptools scm"},
			},
			wantCode: errors.ErrSpecInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode),
				"got %v, want code %s", err, tt.wantCode)
		})
	}
}

func TestRequirementsForUnknownPlatform(t *testing.T) {
	m, err := manifest.Default()
	require.NoError(t, err)

	_, err = m.RequirementsFor("plan9")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlatformUnknown))
}

func TestDetectPlatform(t *testing.T) {
	platform := manifest.DetectPlatform()
	assert.Contains(t, []string{manifest.PlatformPosix, manifest.PlatformWindows}, platform)
}

func TestLoad(t *testing.T) {
	t.Run("override replaces defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.toml")
		content := `
pip = "pip3"

[requirements]
posix = ["scipy==1.4.1", "psutil"]
windows = ["scipy==1.4.1"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		m, err := manifest.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "pip3", m.Pip)
		// Unset fields keep their defaults
		assert.Equal(t, "python", m.Python)
		assert.Equal(t, "record.txt", m.Record)

		posix, err := m.RequirementsFor(manifest.PlatformPosix)
		require.NoError(t, err)
		assert.Len(t, posix, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.toml")
		require.NoError(t, os.WriteFile(path, []byte("[requirements\n"), 0644))

		_, err := manifest.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestParse))
	})

	t.Run("invalid requirement rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "manifest.toml")
		content := `
[requirements]
posix = ["scipy=1.4.1"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := manifest.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSpecInvalid))
	})
}

func TestDefaultTOMLRoundTrip(t *testing.T) {
	data := manifest.DefaultTOML()
	assert.NotEmpty(t, data)

	path := filepath.Join(t.TempDir(), "manifest.toml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
}
