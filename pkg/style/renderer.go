package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pipstrap/pkg/bootstrap"
	"github.com/arthur-debert/pipstrap/pkg/manifest"
	"github.com/arthur-debert/pipstrap/pkg/pipenv"
	"github.com/arthur-debert/pipstrap/pkg/record"
)

// RenderPlan renders the resolved command sequence.
func RenderPlan(plan *bootstrap.Plan) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(fmt.Sprintf("Bootstrap plan (%s)", plan.Platform)) + "\n\n")

	b.WriteString(MutedStyle.Render("Environment:") + "\n")
	for _, f := range pipenv.Flags() {
		b.WriteString(ListItemStyle.Render(fmt.Sprintf("%s=%s", f.Name, f.Value)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(MutedStyle.Render("Steps:") + "\n")
	for i, step := range plan.Steps {
		line := fmt.Sprintf("%d. %s", i+1, step.Name)
		b.WriteString(ListItemStyle.Render(line) + "\n")
		cmd := CommandStyle.Render(step.Command + " " + strings.Join(step.Args, " "))
		b.WriteString(ListItemStyle.PaddingLeft(5).Render(cmd) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderOverlap renders the requirements that shadow conda-provided
// packages. Informational: PIP_IGNORE_INSTALLED makes pip reinstall
// over them.
func RenderOverlap(envName string, overlap []manifest.Spec) string {
	if len(overlap) == 0 {
		return ""
	}

	var b strings.Builder
	header := fmt.Sprintf("%s %d requirement(s) already provided by conda environment %q (pip will reinstall them):",
		WarningIndicator, len(overlap), envName)
	b.WriteString(header + "\n")
	for _, spec := range overlap {
		b.WriteString(ListItemStyle.Render(spec.String()) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderFlagReport renders the verify output for the environment flags.
func RenderFlagReport(missing []pipenv.Flag) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("pip environment flags") + "\n")

	missingNames := make(map[string]bool, len(missing))
	for _, f := range missing {
		missingNames[f.Name] = true
	}

	for _, f := range pipenv.Flags() {
		if missingNames[f.Name] {
			b.WriteString(ListItemStyle.Render(
				fmt.Sprintf("%s %s: not %s", ErrorIndicator, f.Name, f.Value)) + "\n")
		} else {
			b.WriteString(ListItemStyle.Render(
				fmt.Sprintf("%s %s=%s", SuccessIndicator, f.Name, f.Value)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRecord renders the verify output for the install record.
func RenderRecord(rec *record.Record, err error) string {
	if err != nil {
		return fmt.Sprintf("%s install record: %v", ErrorIndicator, err)
	}
	return fmt.Sprintf("%s install record %s (%d files)", SuccessIndicator, rec.Path, rec.Len())
}
