// Package pipenv implements the pip environment-flag contract the
// bootstrap depends on. In a conda-build shell pip inherits defaults
// that make it defer to conda's view of the environment: no index
// lookups, no transitive dependency resolution, and no reinstalling
// over packages conda reports as installed. All three flags are forced
// to their permissive value so pip behaves like a standalone installer.
package pipenv

import "strings"

// Flag is one pip environment variable with its forced value.
type Flag struct {
	Name  string
	Value string
}

// The three flags and their permissive values. pip parses these with
// strtobool, so "False"/"True" are the canonical spellings.
const (
	NoIndex         = "PIP_NO_INDEX"
	NoDependencies  = "PIP_NO_DEPENDENCIES"
	IgnoreInstalled = "PIP_IGNORE_INSTALLED"

	// Permissive values: allow index lookups, allow dependency
	// resolution, reinstall over conda-installed packages.
	NoIndexValue         = "False"
	NoDependenciesValue  = "False"
	IgnoreInstalledValue = "True"
)

// Flags returns the fixed flag list in a stable order.
func Flags() []Flag {
	return []Flag{
		{Name: NoIndex, Value: NoIndexValue},
		{Name: NoDependencies, Value: NoDependenciesValue},
		{Name: IgnoreInstalled, Value: IgnoreInstalledValue},
	}
}

// Apply returns env with every flag forced to its permissive value,
// replacing any existing assignment. The input slice is not modified.
func Apply(env []string) []string {
	out := make([]string, 0, len(env)+3)
	for _, kv := range env {
		if !isFlagAssignment(kv) {
			out = append(out, kv)
		}
	}
	for _, f := range Flags() {
		out = append(out, f.Name+"="+f.Value)
	}
	return out
}

// Missing returns the flags that are not at their permissive value in
// the given environment.
func Missing(env []string) []Flag {
	values := make(map[string]string, 3)
	for _, kv := range env {
		name, value, ok := splitAssignment(kv)
		if ok {
			values[name] = value
		}
	}

	var missing []Flag
	for _, f := range Flags() {
		if !strings.EqualFold(values[f.Name], f.Value) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Satisfied reports whether every flag holds its permissive value.
func Satisfied(env []string) bool {
	return len(Missing(env)) == 0
}

func isFlagAssignment(kv string) bool {
	name, _, ok := splitAssignment(kv)
	if !ok {
		return false
	}
	for _, f := range Flags() {
		if name == f.Name {
			return true
		}
	}
	return false
}

func splitAssignment(kv string) (name, value string, ok bool) {
	i := strings.IndexByte(kv, '=')
	if i < 0 {
		return "", "", false
	}
	return kv[:i], kv[i+1:], true
}
