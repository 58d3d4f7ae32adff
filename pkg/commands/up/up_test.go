package up_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pipstrap/pkg/bootstrap"
	"github.com/arthur-debert/pipstrap/pkg/commands/up"
	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/paths"
	"github.com/arthur-debert/pipstrap/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	ran    []bootstrap.Step
	failOn string
}

func (f *fakeRunner) Run(_ context.Context, step bootstrap.Step, env []string) error {
	f.ran = append(f.ran, step)
	if step.Name == f.failOn {
		return fmt.Errorf("exit status 1")
	}
	// Simulate setup.py writing the install record
	if step.Name == bootstrap.StepSetupInstall {
		path := filepath.Join(step.Dir, record.DefaultName)
		return os.WriteFile(path, []byte("/site-packages/pkg/a.py\n"), 0644)
	}
	return nil
}

func isolateUserManifest(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvManifest, "")
	t.Setenv(paths.EnvConfigDir, t.TempDir())
}

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.toml")
	content := `
[requirements]
posix = ["scipy==1.4.1", "psutil"]
windows = ["scipy==1.4.1"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestUpRunsFullSequence(t *testing.T) {
	isolateUserManifest(t)
	dir := t.TempDir()
	runner := &fakeRunner{}

	result, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          dir,
		Runner:       runner,
	})
	require.NoError(t, err)
	require.Len(t, runner.ran, 3)

	// End to end: the install record exists afterwards
	rec, recErr := record.Verify(dir)
	require.NoError(t, recErr)
	assert.Equal(t, 1, rec.Len())
	assert.False(t, result.DryRun)
}

func TestUpDryRunExecutesNothing(t *testing.T) {
	isolateUserManifest(t)
	runner := &fakeRunner{}

	result, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          t.TempDir(),
		DryRun:       true,
		Runner:       runner,
	})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Empty(t, runner.ran)
	require.NotNil(t, result.Plan)
	assert.Len(t, result.Plan.Steps, 3)
}

func TestUpAbortsBeforeSetupOnInstallFailure(t *testing.T) {
	isolateUserManifest(t)
	dir := t.TempDir()
	runner := &fakeRunner{failOn: bootstrap.StepRequirements}

	_, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          dir,
		Runner:       runner,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPipInstall))

	// The setup.py step never ran, so no record exists
	require.Len(t, runner.ran, 1)
	_, recErr := record.Verify(dir)
	assert.True(t, errors.IsErrorCode(recErr, errors.ErrRecordMissing))
}

func TestUpCondaOverlap(t *testing.T) {
	isolateUserManifest(t)
	dir := t.TempDir()
	envContent := `
name: base-env
dependencies:
  - python=3.6
  - scipy=1.4
`
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "environment.yml"), []byte(envContent), 0644))

	result, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          dir,
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, "base-env", result.CondaEnvName)
	require.Len(t, result.Overlap, 1)
	assert.Equal(t, "scipy", result.Overlap[0].Name)
}

func TestUpExplicitCondaEnvMustExist(t *testing.T) {
	isolateUserManifest(t)

	_, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          t.TempDir(),
		CondaEnvPath: filepath.Join(t.TempDir(), "nope.yml"),
		DryRun:       true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCondaEnvRead))
}

func TestUpMissingCondaEnvIsFine(t *testing.T) {
	isolateUserManifest(t)

	result, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          t.TempDir(),
		DryRun:       true,
	})
	require.NoError(t, err)
	assert.Empty(t, result.CondaEnvName)
	assert.Empty(t, result.Overlap)
}

func TestUpSkipSetup(t *testing.T) {
	isolateUserManifest(t)
	runner := &fakeRunner{}

	_, err := up.Up(context.Background(), up.UpOptions{
		ManifestPath: writeManifest(t),
		Platform:     "posix",
		Dir:          t.TempDir(),
		SkipSetup:    true,
		Runner:       runner,
	})
	require.NoError(t, err)

	for _, step := range runner.ran {
		assert.NotEqual(t, bootstrap.StepSetupInstall, step.Name)
	}
}
