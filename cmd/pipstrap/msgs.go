package pipstrap

// Short messages (one-liners)
const (
	MsgRootShort = "Bootstrap a split conda/pip Python environment"
	MsgRootLong  = `pipstrap finishes the setup of a Python environment that conda started:
it forces pip's environment flags to their permissive values, installs the
remaining dependencies with pip, and runs the target package's own
setup.py install with an install-file record.

The pip phase deliberately ignores what conda reports as installed
(PIP_IGNORE_INSTALLED=True) so the pinned versions win; see
'pipstrap help pip-flags' for the full contract.`

	MsgUpShort          = "Run the bootstrap sequence"
	MsgPlanShort        = "Show the resolved command sequence without running it"
	MsgVerifyShort      = "Check the pip flags and the install record"
	MsgGenManifestShort = "Write the default dependency manifest to a file"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice    = "\nDRY RUN MODE - No commands were executed"
	MsgUpDone          = "bootstrap completed (%d steps, platform %s)"
	MsgGenManifestDone = "Wrote default manifest to %s\n"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview the plan without executing anything"
	MsgFlagManifest  = "Path to a dependency manifest (default: discovered or embedded)"
	MsgFlagPlatform  = "Requirement set to use (posix, windows; default: current OS)"
	MsgFlagDir       = "Target package directory"
	MsgFlagPip       = "pip executable (overrides the manifest)"
	MsgFlagPython    = "python executable (overrides the manifest)"
	MsgFlagCondaEnv  = "Path to a conda environment.yml (default: <dir>/environment.yml if present)"
	MsgFlagSkipSetup = "Stop after the dependency phase, skipping setup.py install"
	MsgFlagJSON      = "Output the plan as JSON"
	MsgFlagForce     = "Overwrite an existing file"
)

// Long messages
const (
	MsgUpLong = `The 'up' command runs the full bootstrap sequence:

  1. pip install of the platform requirement list
  2. pip install of the build-time helpers (setuptools-scm)
  3. python setup.py install --single-version-externally-managed
     --record=record.txt

All commands run with PIP_NO_INDEX=False, PIP_NO_DEPENDENCIES=False and
PIP_IGNORE_INSTALLED=True forced in their environment. The sequence is
fail-fast: the first non-zero exit aborts the run.`

	MsgUpExample = `  # Bootstrap the package in the current directory
  pipstrap up

  # Preview what would run
  pipstrap up --dry-run

  # Bootstrap a package elsewhere with explicit executables
  pipstrap up --dir ~/src/mypkg --pip pip3 --python python3

  # Dependencies only, no setup.py step
  pipstrap up --skip-setup`

	MsgPlanLong = `The 'plan' command resolves the manifest and prints the exact command
sequence 'up' would run, including the forced pip environment flags.
Nothing is executed.`

	MsgPlanExample = `  # Show the plan for this OS
  pipstrap plan

  # Show the windows requirement set as JSON
  pipstrap plan --platform windows --json`

	MsgVerifyLong = `The 'verify' command checks the observable outcomes of a bootstrap:
that the three pip environment flags hold their permissive values in the
current environment, and that the install record exists and is non-empty
in the target directory. Exits non-zero if either check fails.`

	MsgGenManifestLong = `The 'genmanifest' command writes the embedded default manifest, comments
included, so it can be edited and passed back with --manifest (or placed
in the config directory for automatic discovery).`
)
