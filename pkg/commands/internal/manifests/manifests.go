// Package manifests resolves which dependency manifest a command uses:
// an explicit path wins, then a user manifest discovered through
// PIPSTRAP_MANIFEST or the config directory, then the embedded default.
package manifests

import (
	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"github.com/arthur-debert/pipstrap/pkg/paths"
)

var log = logging.GetLogger("commands.manifests")

// Resolve returns the manifest for the given explicit path, falling
// back to discovery and then the embedded default.
func Resolve(path string) (*manifest.Manifest, error) {
	if path != "" {
		return manifest.Load(path)
	}

	if discovered := paths.New().ManifestPath(); discovered != "" {
		log.Debug().Str("path", discovered).Msg("Using discovered user manifest")
		return manifest.Load(discovered)
	}

	return manifest.Default()
}
