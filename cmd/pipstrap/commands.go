package pipstrap

import (
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/pipstrap/internal/version"
	"github.com/arthur-debert/pipstrap/pkg/commands/genmanifest"
	"github.com/arthur-debert/pipstrap/pkg/commands/plan"
	"github.com/arthur-debert/pipstrap/pkg/commands/up"
	"github.com/arthur-debert/pipstrap/pkg/commands/verify"
	"github.com/arthur-debert/pipstrap/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newUpCmd(dryRun *bool) *cobra.Command {
	var opts up.UpOptions

	cmd := &cobra.Command{
		Use:     "up",
		Short:   MsgUpShort,
		Long:    MsgUpLong,
		Example: MsgUpExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DryRun = *dryRun

			result, err := up.Up(cmd.Context(), opts)
			if err != nil {
				return err
			}

			if overlap := style.RenderOverlap(result.CondaEnvName, result.Overlap); overlap != "" {
				cmd.Println(overlap)
			}

			if result.DryRun {
				cmd.Println(style.RenderPlan(result.Plan))
				cmd.Println(style.MutedStyle.Render(MsgDryRunNotice))
				return nil
			}

			for _, step := range result.Plan.Steps {
				cmd.Println("  " + style.StepStyle(false).Sprint(step.Name))
			}
			cmd.Println(style.SuccessIndicator + " " +
				fmt.Sprintf(MsgUpDone, len(result.Plan.Steps), result.Plan.Platform))
			return nil
		},
	}

	addResolutionFlags(cmd, &opts.ManifestPath, &opts.Platform, &opts.Dir, &opts.Pip, &opts.Python)
	cmd.Flags().StringVar(&opts.CondaEnvPath, "conda-env", "", MsgFlagCondaEnv)
	cmd.Flags().BoolVar(&opts.SkipSetup, "skip-setup", false, MsgFlagSkipSetup)

	return cmd
}

func newPlanCmd() *cobra.Command {
	var opts plan.PlanOptions
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "plan",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := plan.Plan(opts)
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(result.Plan, "", "  ")
				if err != nil {
					return err
				}
				cmd.Println(string(data))
				return nil
			}

			cmd.Println(style.RenderPlan(result.Plan))
			return nil
		},
	}

	addResolutionFlags(cmd, &opts.ManifestPath, &opts.Platform, &opts.Dir, &opts.Pip, &opts.Python)
	cmd.Flags().BoolVar(&opts.SkipSetup, "skip-setup", false, MsgFlagSkipSetup)
	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "verify",
		Short:   MsgVerifyShort,
		Long:    MsgVerifyLong,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := verify.Verify(verify.VerifyOptions{Dir: dir})

			cmd.Println(style.RenderFlagReport(result.MissingFlags))
			cmd.Println(style.RenderRecord(result.Record, result.RecordErr))

			if !result.Ok() {
				return fmt.Errorf("verification failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", MsgFlagDir)

	return cmd
}

func newGenManifestCmd() *cobra.Command {
	var opts genmanifest.GenManifestOptions

	cmd := &cobra.Command{
		Use:   "genmanifest [path]",
		Short: MsgGenManifestShort,
		Long:  MsgGenManifestLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Path = args[0]
			}

			result, err := genmanifest.GenManifest(opts)
			if err != nil {
				return err
			}

			cmd.Printf(MsgGenManifestDone, result.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, MsgFlagForce)

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pipstrap version %s\n", version.Version)
			cmd.Printf("  commit: %s\n", version.Commit)
			cmd.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

// addResolutionFlags registers the flags shared by every command that
// resolves a plan.
func addResolutionFlags(cmd *cobra.Command, manifestPath, platform, dir, pip, python *string) {
	cmd.Flags().StringVar(manifestPath, "manifest", "", MsgFlagManifest)
	cmd.Flags().StringVar(platform, "platform", "", MsgFlagPlatform)
	cmd.Flags().StringVar(dir, "dir", ".", MsgFlagDir)
	cmd.Flags().StringVar(pip, "pip", "", MsgFlagPip)
	cmd.Flags().StringVar(python, "python", "", MsgFlagPython)
}
