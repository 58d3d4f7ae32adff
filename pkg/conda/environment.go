// Package conda reads conda environment files. conda is the primary
// package manager here: it installed most of the base environment
// before pipstrap runs, and its environment.yml tells us which package
// names the pip phase will reinstall over (which is intentional, given
// PIP_IGNORE_INSTALLED, but worth surfacing).
package conda

import (
	"os"
	"strings"

	"github.com/arthur-debert/pipstrap/pkg/errors"
	"github.com/arthur-debert/pipstrap/pkg/logging"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger("conda")

// DefaultFileName is where conda environment files conventionally live.
const DefaultFileName = "environment.yml"

// Environment is a parsed conda environment file.
type Environment struct {
	Name     string
	Channels []string

	// Dependencies are the conda-managed package specs, verbatim
	// ("python=3.6", "numpy", "pyqt >=5.9").
	Dependencies []string

	// PipDependencies is the nested "pip:" section, if present.
	PipDependencies []string
}

// rawEnvironment matches the YAML document. The dependencies list mixes
// plain strings with a single mapping node for the pip section, so it
// has to be decoded per-node.
type rawEnvironment struct {
	Name         string      `yaml:"name"`
	Channels     []string    `yaml:"channels"`
	Dependencies []yaml.Node `yaml:"dependencies"`
}

// ReadEnvironment reads and parses a conda environment file.
func ReadEnvironment(path string) (*Environment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCondaEnvRead, "failed to read conda environment %s", path)
	}
	return parseEnvironment(data, path)
}

func parseEnvironment(data []byte, path string) (*Environment, error) {
	var raw rawEnvironment
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCondaEnvParse, "failed to parse conda environment %s", path)
	}

	env := &Environment{
		Name:     raw.Name,
		Channels: raw.Channels,
	}

	for i := range raw.Dependencies {
		node := &raw.Dependencies[i]
		switch node.Kind {
		case yaml.ScalarNode:
			var dep string
			if err := node.Decode(&dep); err != nil {
				return nil, errors.Wrapf(err, errors.ErrCondaEnvParse, "bad dependency entry in %s", path)
			}
			env.Dependencies = append(env.Dependencies, dep)
		case yaml.MappingNode:
			var section map[string][]string
			if err := node.Decode(&section); err != nil {
				return nil, errors.Wrapf(err, errors.ErrCondaEnvParse, "bad dependency section in %s", path)
			}
			env.PipDependencies = append(env.PipDependencies, section["pip"]...)
		}
	}

	log.Debug().
		Str("name", env.Name).
		Int("dependencies", len(env.Dependencies)).
		Int("pip_dependencies", len(env.PipDependencies)).
		Msg("Conda environment parsed")
	return env, nil
}

// PackageNames returns the conda-managed package names with version and
// build suffixes stripped ("python=3.6" -> "python", "pyqt >=5.9" ->
// "pyqt").
func (e *Environment) PackageNames() []string {
	names := make([]string, 0, len(e.Dependencies))
	for _, dep := range e.Dependencies {
		if name := packageName(dep); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func packageName(dep string) string {
	dep = strings.TrimSpace(dep)
	if i := strings.IndexAny(dep, " =<>!"); i >= 0 {
		dep = dep[:i]
	}
	return dep
}

// Overlap returns the requirement specs whose canonical names are also
// provided by the conda environment, in the order they appear in specs.
func Overlap(env *Environment, specs []manifest.Spec) []manifest.Spec {
	provided := make(map[string]bool, len(env.Dependencies))
	for _, name := range env.PackageNames() {
		provided[manifest.Spec{Name: name}.CanonicalName()] = true
	}

	var overlap []manifest.Spec
	for _, spec := range specs {
		if provided[spec.CanonicalName()] {
			overlap = append(overlap, spec)
		}
	}
	return overlap
}
