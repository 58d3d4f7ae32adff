// Package genmanifest writes the embedded default manifest to a file,
// giving users a documented starting point for their own overrides.
package genmanifest

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"github.com/arthur-debert/pipstrap/pkg/paths"
)

// GenManifestOptions defines the options for the GenManifest command.
type GenManifestOptions struct {
	// Path is the output file; empty means the config-dir manifest
	// location.
	Path string

	// Force overwrites an existing file.
	Force bool
}

// GenManifestResult is what the GenManifest command produces.
type GenManifestResult struct {
	Path string
}

// GenManifest writes the embedded default manifest, comments included.
func GenManifest(opts GenManifestOptions) (*GenManifestResult, error) {
	log := logging.GetLogger("commands.genmanifest")

	path := opts.Path
	if path == "" {
		path = filepath.Join(paths.New().ConfigDir(), paths.ManifestFileName)
	}

	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return nil, errors.Newf(errors.ErrInvalidInput,
				"%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to create directory for %s", path)
	}

	if err := os.WriteFile(path, manifest.DefaultTOML(), 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to write manifest %s", path)
	}

	log.Info().Str("path", path).Msg("Default manifest written")
	return &GenManifestResult{Path: path}, nil
}
