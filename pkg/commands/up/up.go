// Package up implements the bootstrap run: resolve the manifest, build
// the plan, cross-check against the conda environment, and execute the
// install sequence.
package up

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/pipstrap/pkg/bootstrap"
	"github.com/arthur-debert/pipstrap/pkg/commands/internal/manifests"
	"github.com/arthur-debert/pipstrap/pkg/conda"
	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
)

// UpOptions defines the options for the Up command.
type UpOptions struct {
	// ManifestPath is an explicit manifest file; empty means discovery.
	ManifestPath string

	// Platform overrides platform detection.
	Platform string

	// Dir is the target package directory; defaults to ".".
	Dir string

	// Pip and Python override the executables named in the manifest.
	Pip    string
	Python string

	// CondaEnvPath is an explicit conda environment file. When empty,
	// Dir/environment.yml is used if it exists.
	CondaEnvPath string

	// SkipSetup stops after the dependency phase.
	SkipSetup bool

	// DryRun resolves the plan without executing anything.
	DryRun bool

	// Runner overrides the step runner (used in tests); nil means
	// an os/exec runner.
	Runner bootstrap.Runner
}

// UpResult is what the Up command produces.
type UpResult struct {
	Plan         *bootstrap.Plan
	Overlap      []manifest.Spec
	CondaEnvName string
	DryRun       bool
}

// Up builds the plan and, unless DryRun is set, executes it.
func Up(ctx context.Context, opts UpOptions) (*UpResult, error) {
	log := logging.GetLogger("commands.up")
	defer logging.LogDuration(time.Now(), "up")

	m, err := manifests.Resolve(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	plan, err := bootstrap.BuildPlan(bootstrap.Options{
		Manifest:  m,
		Platform:  opts.Platform,
		Dir:       opts.Dir,
		Pip:       opts.Pip,
		Python:    opts.Python,
		SkipSetup: opts.SkipSetup,
	})
	if err != nil {
		return nil, err
	}

	result := &UpResult{Plan: plan, DryRun: opts.DryRun}

	if env, err := readCondaEnv(opts, plan.Dir); err != nil {
		return nil, err
	} else if env != nil {
		specs, err := m.RequirementsFor(plan.Platform)
		if err != nil {
			return nil, err
		}
		result.CondaEnvName = env.Name
		result.Overlap = conda.Overlap(env, specs)
		if len(result.Overlap) > 0 {
			log.Info().
				Str("conda_env", env.Name).
				Int("overlap", len(result.Overlap)).
				Msg("Requirements shadow conda-provided packages; pip will reinstall them")
		}
	}

	if opts.DryRun {
		log.Info().Msg("Dry run mode - no commands were executed")
		return result, nil
	}

	runner := opts.Runner
	if runner == nil {
		runner = bootstrap.NewExecRunner()
	}

	if err := bootstrap.Execute(ctx, plan, runner); err != nil {
		return nil, err
	}

	log.Info().Int("steps", len(plan.Steps)).Msg("Bootstrap completed")
	return result, nil
}

// readCondaEnv loads the conda environment file: the explicit path must
// exist, the conventional one is optional.
func readCondaEnv(opts UpOptions, dir string) (*conda.Environment, error) {
	if opts.CondaEnvPath != "" {
		return conda.ReadEnvironment(opts.CondaEnvPath)
	}

	candidate := filepath.Join(dir, conda.DefaultFileName)
	if _, err := os.Stat(candidate); err != nil {
		return nil, nil
	}
	return conda.ReadEnvironment(candidate)
}
