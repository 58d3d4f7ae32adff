// Package paths provides centralized path handling for pipstrap.
// It implements XDG Base Directory specification compliance for the
// few locations pipstrap cares about: its config directory (where a
// user manifest may live), its state directory (log file), and the
// target package directory the bootstrap runs in.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvManifest points at a user manifest file, overriding discovery
	EnvManifest = "PIPSTRAP_MANIFEST"

	// EnvConfigDir overrides the XDG config directory for pipstrap
	EnvConfigDir = "PIPSTRAP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for pipstrap
	EnvStateDir = "PIPSTRAP_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for pipstrap-specific files
	AppDirName = "pipstrap"

	// ManifestFileName is the name of the user manifest file
	ManifestFileName = "manifest.toml"

	// LogFileName is the name of the log file
	LogFileName = "pipstrap.log"
)

// Paths provides centralized path management for pipstrap
type Paths struct {
	configDir string
	stateDir  string
}

// New constructs a Paths instance, honoring environment overrides
// before falling back to XDG defaults.
func New() *Paths {
	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return &Paths{
		configDir: configDir,
		stateDir:  stateDir,
	}
}

// ConfigDir returns the pipstrap config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the pipstrap state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// ManifestPath returns the path of the user manifest file, or "" when
// no user manifest exists. PIPSTRAP_MANIFEST wins over the config dir.
func (p *Paths) ManifestPath() string {
	if env := os.Getenv(EnvManifest); env != "" {
		return env
	}

	candidate := filepath.Join(p.configDir, ManifestFileName)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate
	}
	return ""
}
