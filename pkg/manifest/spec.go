package manifest

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/pipstrap/pkg/errors"
)

// Spec is a single pip requirement: a package name plus an optional
// version constraint ("", "==1.4.1", ">=5.12.0,<=5.14.1").
type Spec struct {
	Name       string
	Constraint string
}

var (
	nameRe    = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	clauseRe  = regexp.MustCompile(`^(===|==|!=|<=|>=|~=|<|>)[A-Za-z0-9_.!+*-]+$`)
	canonRe   = regexp.MustCompile(`[-_.]+`)
	opStartRe = regexp.MustCompile(`[<>=!~]`)
)

// ParseSpec splits a pip requirement string into name and constraint.
func ParseSpec(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Spec{}, errors.New(errors.ErrSpecInvalid, "empty requirement")
	}

	loc := opStartRe.FindStringIndex(s)
	if loc == nil {
		spec := Spec{Name: s}
		return spec, spec.Validate()
	}

	spec := Spec{
		Name:       strings.TrimSpace(s[:loc[0]]),
		Constraint: strings.ReplaceAll(s[loc[0]:], " ", ""),
	}
	return spec, spec.Validate()
}

// Validate checks that the name is a syntactically valid package name
// and the constraint, when present, is a comma-separated list of
// pip comparison clauses.
func (s Spec) Validate() error {
	if !nameRe.MatchString(s.Name) {
		return errors.Newf(errors.ErrSpecInvalid, "invalid package name %q", s.Name)
	}

	if s.Constraint == "" {
		return nil
	}

	for _, clause := range strings.Split(s.Constraint, ",") {
		if !clauseRe.MatchString(clause) {
			return errors.Newf(errors.ErrSpecInvalid,
				"invalid version constraint %q for package %q", clause, s.Name)
		}
	}
	return nil
}

// String renders the spec as a pip install argument.
func (s Spec) String() string {
	return s.Name + s.Constraint
}

// CanonicalName returns the PEP 503 normalized package name: lowercase,
// with runs of "-", "_" and "." collapsed to a single "-". pip treats
// names that normalize identically as the same package, so duplicate
// detection has to compare canonical names.
func (s Spec) CanonicalName() string {
	return canonRe.ReplaceAllString(strings.ToLower(s.Name), "-")
}

// ParseSpecs parses a list of requirement strings, failing on the first
// invalid entry.
func ParseSpecs(raw []string) ([]Spec, error) {
	specs := make([]Spec, 0, len(raw))
	for _, r := range raw {
		spec, err := ParseSpec(r)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}
