// Package verify checks the two observable outcomes of a bootstrap:
// the pip environment flags and the install record.
package verify

import (
	"os"

	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/pipenv"
	"github.com/arthur-debert/pipstrap/pkg/record"
)

// VerifyOptions defines the options for the Verify command.
type VerifyOptions struct {
	// Dir is the target package directory holding the install record;
	// defaults to ".".
	Dir string

	// Env is the environment to inspect; nil means the process's own.
	Env []string
}

// VerifyResult is what the Verify command produces. RecordErr is part
// of the result, not a command failure: a missing record is a finding.
type VerifyResult struct {
	MissingFlags []pipenv.Flag
	Record       *record.Record
	RecordErr    error
}

// Ok reports whether everything checked out.
func (r *VerifyResult) Ok() bool {
	return len(r.MissingFlags) == 0 && r.RecordErr == nil
}

// Verify inspects the environment flags and the install record.
func Verify(opts VerifyOptions) *VerifyResult {
	log := logging.GetLogger("commands.verify")

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	result := &VerifyResult{
		MissingFlags: pipenv.Missing(env),
	}
	result.Record, result.RecordErr = record.Verify(dir)

	log.Debug().
		Int("missing_flags", len(result.MissingFlags)).
		Bool("record_ok", result.RecordErr == nil).
		Msg("Verify finished")
	return result
}
