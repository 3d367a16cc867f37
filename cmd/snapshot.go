package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"foldersnap/pkg/combine"
	"foldersnap/pkg/config"
	"foldersnap/pkg/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newProfileCmd returns the subcommand that runs a single profile.
func newProfileCmd(name string, opts *options) *cobra.Command {
	profile, _ := combine.LookupProfile(name)
	return &cobra.Command{
		Use:   name + " [directory]",
		Short: profile.Short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, name, args, opts)
		},
	}
}

// runSnapshot resolves configuration and flags into Arguments and runs the
// combine pipeline.
func runSnapshot(cmd *cobra.Command, profile string, positional []string, opts *options) error {
	logger := logging.Logger

	dir := "."
	if len(positional) == 1 {
		dir = positional[0]
	}

	args := &combine.Arguments{
		Directory:   dir,
		Profile:     profile,
		Output:      opts.output,
		ExtraIgnore: opts.ignore,
		IgnoreFile:  opts.ignoreFile,
		SelfName:    selfName(),
	}

	cfg, err := config.Load(opts.configFile, dir, logger)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Apply(args)

	flags := cmd.Flags()
	if flags.Changed("workers") {
		args.MaxWorkers = opts.workers
	}
	if flags.Changed("gitignore") {
		args.UseGitignore = opts.gitignore
	}

	result, err := combine.RunCombine(args, logger)
	if err != nil {
		return err
	}
	if result.FailedFiles > 0 {
		logger.Warn("Snapshot written with skipped files", zap.Int("failedFiles", result.FailedFiles))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Output written to %s\n", result.OutputPath)
	return nil
}

// selfName returns the running executable's file name, or "" if unknown.
func selfName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
