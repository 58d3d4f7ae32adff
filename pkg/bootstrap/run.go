package bootstrap

import (
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/pipenv"
)

// Runner executes a single step with the given environment.
type Runner interface {
	Run(ctx context.Context, step Step, env []string) error
}

// ExecRunner runs steps through os/exec, passing the child's output
// straight through so pip and setup.py diagnostics reach the user
// unmodified.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner creates an ExecRunner wired to the process's own
// stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes one step to completion. No timeout is imposed; a
// hanging package manager hangs the step unless ctx is cancelled.
func (r *ExecRunner) Run(ctx context.Context, step Step, env []string) error {
	logging.LogCommand(step.Command, step.Args)

	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	cmd.Dir = step.Dir
	cmd.Env = env
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return cmd.Run()
}

// Execute runs every step of the plan in order with the pip flags
// forced in the environment. The first failure aborts the whole run:
// no retry, no partial-continue, no cleanup of steps already done.
func Execute(ctx context.Context, plan *Plan, runner Runner) error {
	env := pipenv.Apply(os.Environ())

	for _, step := range plan.Steps {
		start := time.Now()
		log.Info().
			Str("step", step.Name).
			Str("command", step.Command).
			Msg("Step started")

		if err := runner.Run(ctx, step, env); err != nil {
			log.Error().
				Err(err).
				Str("step", step.Name).
				Msg("Step failed")
			return errors.Wrapf(err, codeFor(step), "step %s failed", step.Name).
				WithDetail("step", step.Name).
				WithDetail("command", step.Command)
		}

		log.Info().
			Str("step", step.Name).
			Dur("duration", time.Since(start)).
			Msg("Step completed")
	}

	return nil
}

func codeFor(step Step) errors.ErrorCode {
	switch step.Name {
	case StepSetupInstall:
		return errors.ErrSetupInstall
	case StepRequirements, StepBuildRequires:
		return errors.ErrPipInstall
	default:
		return errors.ErrStepFailed
	}
}
