package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solidity-foundry-detector/cmd/ui/detection"
	"solidity-foundry-detector/cmd/ui/spinner"
	"solidity-foundry-detector/pkg/config"
	dt "solidity-foundry-detector/pkg/detection"
	"solidity-foundry-detector/pkg/detector"
	"solidity-foundry-detector/pkg/util"
)

const Version = "0.1.0"

var (
	logoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#01FAC6")).Bold(true)

	// isInteractiveTTY is swapped out in tests
	isInteractiveTTY = func() bool {
		return config.IsTerminal(os.Stdout) && config.IsTerminal(os.Stderr)
	}
)

// errNotDetected signals a Fail verdict under --exit-code
var errNotDetected = errors.New("project not detected")

// Run drives the command line around a single detector and exits the process
// with the resulting status.
func Run(d dt.Detector) {
	os.Exit(Execute(d, os.Args[1:], os.Stdout, os.Stderr))
}

// Execute runs the command line with args, writing to stdout and stderr, and
// returns the exit status
func Execute(d dt.Detector, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(d)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNotDetected) {
			return config.ExitNotDetected
		}
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return config.ExitError
	}
	return 0
}

// NewRootCommand builds the root command for d
func NewRootCommand(d dt.Detector) *cobra.Command {
	opts := config.DefaultOptions()
	var jsonOutput, skipInteractive bool

	runE := func(cmd *cobra.Command, args []string) error {
		opts.ApplyArgs(args)
		if jsonOutput {
			opts.Format = config.FormatJSON
		}
		if skipInteractive {
			opts.Interactive = false
		}
		return runDetect(cmd, d, opts)
	}

	rootCmd := &cobra.Command{
		Use:   config.AppName + " [PROJECT_PATH]",
		Short: "Detect Solidity projects built with Foundry",
		Long: `Checks whether a directory is a Solidity/Foundry project: a foundry.toml
in the project root and at least one .sol file anywhere below it.

The verdict is printed as {"pass":true,"language":"Solidity"} or {"pass":false}.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runE,
	}

	rootCmd.SetVersionTemplate(config.AppName + " version {{.Version}}\n")
	rootCmd.AddCommand(newDetectCommand(runE))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.Path, "path", "p", config.DefaultPath, "directory to inspect")
	flags.StringVarP(&opts.Format, "format", "f", config.DefaultFormat, "output format: json, yaml or text")
	flags.BoolVar(&jsonOutput, "json", false, "Output results as JSON (shorthand for --format json)")
	flags.BoolVar(&skipInteractive, "no-interactive", false, "Skip the spinner and colors (for CI/automation)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log detection diagnostics to stderr")
	flags.BoolVar(&opts.ExitCode, "exit-code", false, "exit with status 2 when the project is not detected")

	return rootCmd
}

func runDetect(cmd *cobra.Command, d dt.Detector, opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	defer logger.Sync()

	root, err := util.ResolveProjectPath(opts.Path)
	if err != nil {
		logger.Warn("project path is not a readable directory", zap.Error(err))
	}
	logger.Debug("detecting", zap.String("path", root), zap.String("format", opts.Format))

	var result dt.DetectResult
	if opts.UseTUI(isInteractiveTTY()) {
		fmt.Fprintln(cmd.OutOrStdout(), logoStyle.Render(config.AppName))
		spinner.While("Scanning for Solidity sources...", cmd.ErrOrStderr(), func() {
			result = detector.Detect(d, root, logger)
		})
	} else {
		result = detector.Detect(d, root, logger)
	}

	if opts.Format == config.FormatText {
		fmt.Fprint(cmd.OutOrStdout(), detection.Render(root, result))
	} else if err := detector.Emit(cmd.OutOrStdout(), result, opts.Format); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	if opts.ExitCode && !result.Passed() {
		return errNotDetected
	}
	return nil
}
