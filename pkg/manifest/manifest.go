// Package manifest holds the dependency manifest: the fixed list of
// pip requirements the bootstrap installs on top of what the primary
// package manager (conda) already provides. The list is platform-keyed
// because the posix and windows environments pin slightly different
// versions.
package manifest

import (
	"runtime"
	"sort"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/logging"
)

var log = logging.GetLogger("manifest")

// Platform names used as keys in the requirements table
const (
	PlatformPosix   = "posix"
	PlatformWindows = "windows"
)

// Manifest is the parsed dependency manifest.
type Manifest struct {
	// Python is the python executable used for the setup.py step
	Python string `toml:"python"`

	// Pip is the pip executable used for the install steps
	Pip string `toml:"pip"`

	// Record is the relative path of the install-file manifest written
	// by the setup.py step
	Record string `toml:"record"`

	// BuildRequires are build-time-only helpers installed in their own
	// pip invocation before the setup.py step
	BuildRequires []string `toml:"build-requires"`

	// Requirements maps platform name to pip requirement strings
	Requirements map[string][]string `toml:"requirements"`
}

// DetectPlatform maps the running OS to a requirements table key.
func DetectPlatform() string {
	if runtime.GOOS == "windows" {
		return PlatformWindows
	}
	return PlatformPosix
}

// Platforms returns the platform keys present in the manifest, sorted.
func (m *Manifest) Platforms() []string {
	platforms := make([]string, 0, len(m.Requirements))
	for name := range m.Requirements {
		platforms = append(platforms, name)
	}
	sort.Strings(platforms)
	return platforms
}

// RequirementsFor parses and returns the requirement set for a platform.
func (m *Manifest) RequirementsFor(platform string) ([]Spec, error) {
	raw, ok := m.Requirements[platform]
	if !ok {
		return nil, errors.Newf(errors.ErrPlatformUnknown,
			"no requirements for platform %q (have %v)", platform, m.Platforms())
	}
	return ParseSpecs(raw)
}

// BuildSpecs parses and returns the build-time helper requirements.
func (m *Manifest) BuildSpecs() ([]Spec, error) {
	return ParseSpecs(m.BuildRequires)
}

// Validate checks the whole manifest: every platform set must be
// non-empty, syntactically valid, and free of duplicate canonical
// package names.
func (m *Manifest) Validate() error {
	if len(m.Requirements) == 0 {
		return errors.New(errors.ErrManifestInvalid, "manifest has no requirements tables")
	}

	for _, platform := range m.Platforms() {
		specs, err := m.RequirementsFor(platform)
		if err != nil {
			return err
		}
		if len(specs) == 0 {
			return errors.Newf(errors.ErrManifestInvalid,
				"requirements for platform %q are empty", platform)
		}

		seen := make(map[string]string, len(specs))
		for _, spec := range specs {
			canon := spec.CanonicalName()
			if prev, dup := seen[canon]; dup {
				return errors.Newf(errors.ErrSpecDuplicate,
					"duplicate requirement %q (already listed as %q) on platform %q",
					spec.Name, prev, platform)
			}
			seen[canon] = spec.Name
		}
	}

	if _, err := m.BuildSpecs(); err != nil {
		return err
	}

	log.Debug().
		Strs("platforms", m.Platforms()).
		Int("build_requires", len(m.BuildRequires)).
		Msg("Manifest validated")
	return nil
}
