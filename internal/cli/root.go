// Package cli implements the grelease command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"grelease.dev/grelease/internal/cli/helpers"
	greleaseerrors "grelease.dev/grelease/internal/errors"
	"grelease.dev/grelease/internal/prompt"
	"grelease.dev/grelease/internal/release"
	"grelease.dev/grelease/internal/runtime"
	"grelease.dev/grelease/internal/tui"
)

type rootOptions struct {
	showVersion bool
	verbose     bool
	dir         string
	configPath  string
	promptMode  string
	logFile     string
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "grelease",
		Short: "Cut a release from the development branch",
		Long: `grelease cuts a release from the development branch.

It creates release/<tag>, bumps the version in the configured package files,
merges the release into the master branch, tags it, pushes everything to the
remote and merges master back into the development branch.

Configuration is read from .grelease at the repository root.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.showVersion {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
				return err
			}
			return runRelease(cmd, opts, version)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Print the version and exit")
	rootCmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Print diagnostic output of a failed git command")
	rootCmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Run as if grelease was started in this directory")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the configuration file (default: <repo root>/.grelease)")
	rootCmd.Flags().StringVar(&opts.promptMode, "prompt", "auto", "Prompt style: auto, line, survey or tui")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write a debug log to this file (default: $GRELEASE_LOG_FILE or ~/.grelease/logs/grelease.log)")

	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Show build information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "grelease %s (commit %s, built %s)\n", version, commit, date)
			return err
		},
	}
}

func runRelease(cmd *cobra.Command, opts *rootOptions, version string) error {
	out := cmd.OutOrStdout()

	logFile := opts.logFile
	if logFile == "" {
		logFile = tui.GetLogFilePath()
	}
	splog, err := tui.NewSplogWithConfig(out, logFile)
	if err != nil {
		splog, _ = tui.NewSplogWithConfig(out, "")
		splog.Warn("logging to file disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	tui.ClearScreen(out)
	splog.Banner("##### Welcome to gRelease! (%s) #####", version)

	mode, err := prompt.ParseMode(opts.promptMode)
	if err != nil {
		return report(splog, opts.verbose, err)
	}

	runtimeOpts := runtime.Options{
		Dir:        opts.dir,
		ConfigPath: opts.configPath,
		PromptMode: mode,
		In:         cmd.InOrStdin(),
		Out:        out,
		Splog:      splog,
	}

	err = helpers.Run(cmd, runtimeOpts, func(ctx *runtime.Context) error {
		wf := ctx.Workflow()
		outcome, err := wf.Run(ctx)
		splog.Debug("release finished: %s", outcome)
		switch outcome {
		case release.OutcomeCompleted:
			splog.Banner("##### Release %s is ready. #####", wf.Context().Tag)
			return nil
		case release.OutcomeAbortedByOperator:
			return nil
		default:
			if step := wf.FailedStep(); step != "" {
				splog.Debug("failed step: %s", step)
			}
			return err
		}
	})
	if err != nil {
		return report(splog, opts.verbose, err)
	}
	return nil
}

// report prints the ERROR banner and hands err back so the process exits non-zero
func report(splog *tui.Splog, verbose bool, err error) error {
	splog.Failure(err.Error())
	stdout, stderr, ok := greleaseerrors.Diagnostics(err)
	if ok {
		splog.Debug("stdout: %s", stdout)
		splog.Debug("stderr: %s", stderr)
	}
	if verbose {
		splog.Info("%+v", err)
		if ok {
			if stdout != "" {
				splog.Info("%s", stdout)
			}
			if stderr != "" {
				splog.Info("%s", stderr)
			}
		}
	}
	return err
}
