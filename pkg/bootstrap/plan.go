// Package bootstrap builds and executes the install sequence: one pip
// invocation for the platform requirement list, one for the build-time
// helpers, then the target package's own setup.py install with
// externally-managed single-version semantics and an install record.
package bootstrap

import (
	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
)

var log = logging.GetLogger("bootstrap")

// Step names, stable for logging and error reporting
const (
	StepRequirements  = "pip-install-requirements"
	StepBuildRequires = "pip-install-build-requires"
	StepSetupInstall  = "setup-install"
)

// Step is one external command in the sequence.
type Step struct {
	Name    string
	Command string
	Args    []string
	Dir     string
}

// Plan is the full, resolved command sequence for one platform.
type Plan struct {
	Platform string
	Dir      string
	Record   string
	Steps    []Step
}

// Options configures plan building.
type Options struct {
	// Manifest is the dependency manifest; required.
	Manifest *manifest.Manifest

	// Platform selects the requirement set; defaults to the running OS.
	Platform string

	// Dir is the target package directory; defaults to ".".
	Dir string

	// Pip and Python override the executables named in the manifest.
	Pip    string
	Python string

	// SkipSetup stops the plan after the dependency phase.
	SkipSetup bool
}

// BuildPlan validates the manifest and resolves the step sequence.
// The result is deterministic for a given manifest and options.
func BuildPlan(opts Options) (*Plan, error) {
	m := opts.Manifest
	if err := m.Validate(); err != nil {
		return nil, err
	}

	platform := opts.Platform
	if platform == "" {
		platform = manifest.DetectPlatform()
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	pip := opts.Pip
	if pip == "" {
		pip = m.Pip
	}
	python := opts.Python
	if python == "" {
		python = m.Python
	}

	specs, err := m.RequirementsFor(platform)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Platform: platform,
		Dir:      dir,
		Record:   m.Record,
	}

	args := []string{"install"}
	for _, spec := range specs {
		args = append(args, spec.String())
	}
	plan.Steps = append(plan.Steps, Step{
		Name:    StepRequirements,
		Command: pip,
		Args:    args,
		Dir:     dir,
	})

	if len(m.BuildRequires) > 0 {
		buildSpecs, err := m.BuildSpecs()
		if err != nil {
			return nil, err
		}
		args := []string{"install"}
		for _, spec := range buildSpecs {
			args = append(args, spec.String())
		}
		plan.Steps = append(plan.Steps, Step{
			Name:    StepBuildRequires,
			Command: pip,
			Args:    args,
			Dir:     dir,
		})
	}

	if !opts.SkipSetup {
		plan.Steps = append(plan.Steps, Step{
			Name:    StepSetupInstall,
			Command: python,
			Args: []string{
				"setup.py", "install",
				"--single-version-externally-managed",
				"--record=" + m.Record,
			},
			Dir: dir,
		})
	}

	log.Debug().
		Str("platform", platform).
		Str("dir", dir).
		Int("steps", len(plan.Steps)).
		Int("requirements", len(specs)).
		Msg("Plan built")
	return plan, nil
}
