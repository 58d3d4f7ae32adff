package style_test

import (
	"testing"

	"github.com/arthur-debert/pipstrap/pkg/bootstrap"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"github.com/arthur-debert/pipstrap/pkg/pipenv"
	"github.com/arthur-debert/pipstrap/pkg/record"
	"github.com/arthur-debert/pipstrap/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan(t *testing.T) *bootstrap.Plan {
	t.Helper()
	m := &manifest.Manifest{
		Python:        "python",
		Pip:           "pip",
		Record:        "record.txt",
		BuildRequires: []string{"setuptools-scm"},
		Requirements: map[string][]string{
			"posix": {"scipy==1.4.1", "psutil"},
		},
	}
	plan, err := bootstrap.BuildPlan(bootstrap.Options{Manifest: m, Platform: "posix"})
	require.NoError(t, err)
	return plan
}

func TestRenderPlan(t *testing.T) {
	out := style.RenderPlan(testPlan(t))

	assert.Contains(t, out, "Bootstrap plan (posix)")
	assert.Contains(t, out, "PIP_NO_INDEX=False")
	assert.Contains(t, out, "PIP_IGNORE_INSTALLED=True")
	assert.Contains(t, out, "pip-install-requirements")
	assert.Contains(t, out, "scipy==1.4.1")
	assert.Contains(t, out, "--single-version-externally-managed")
	assert.Contains(t, out, "--record=record.txt")
}

func TestRenderOverlap(t *testing.T) {
	specs, err := manifest.ParseSpecs([]string{"scipy==1.4.1"})
	require.NoError(t, err)

	out := style.RenderOverlap("base-env", specs)
	assert.Contains(t, out, "base-env")
	assert.Contains(t, out, "scipy==1.4.1")

	assert.Empty(t, style.RenderOverlap("base-env", nil))
}

func TestRenderFlagReport(t *testing.T) {
	t.Run("all satisfied", func(t *testing.T) {
		out := style.RenderFlagReport(nil)
		assert.Contains(t, out, "PIP_NO_INDEX=False")
		assert.NotContains(t, out, "not")
	})

	t.Run("missing flag reported", func(t *testing.T) {
		out := style.RenderFlagReport([]pipenv.Flag{
			{Name: pipenv.NoIndex, Value: pipenv.NoIndexValue},
		})
		assert.Contains(t, out, "PIP_NO_INDEX: not False")
	})
}

func TestRenderRecord(t *testing.T) {
	rec := &record.Record{Path: "record.txt", Files: []string{"/a.py", "/b.py"}}
	out := style.RenderRecord(rec, nil)
	assert.Contains(t, out, "record.txt")
	assert.Contains(t, out, "2 files")

	failed := style.RenderRecord(nil, assert.AnError)
	assert.Contains(t, failed, assert.AnError.Error())
}
