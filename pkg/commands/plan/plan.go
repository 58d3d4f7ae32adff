// Package plan resolves the bootstrap plan without executing it.
package plan

import (
	"github.com/arthur-debert/pipstrap/pkg/bootstrap"
	"github.com/arthur-debert/pipstrap/pkg/commands/internal/manifests"
	"github.com/arthur-debert/pipstrap/pkg/logging"
)

// PlanOptions defines the options for the Plan command.
type PlanOptions struct {
	ManifestPath string
	Platform     string
	Dir          string
	Pip          string
	Python       string
	SkipSetup    bool
}

// PlanResult carries the resolved plan.
type PlanResult struct {
	Plan *bootstrap.Plan
}

// Plan resolves the manifest and builds the command sequence.
func Plan(opts PlanOptions) (*PlanResult, error) {
	log := logging.GetLogger("commands.plan")

	m, err := manifests.Resolve(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	p, err := bootstrap.BuildPlan(bootstrap.Options{
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

	log.Debug().Str("platform", p.Platform).Int("steps", len(p.Steps)).Msg("Plan resolved")
	return &PlanResult{Plan: p}, nil
}
