package cmd

import (
	"foldersnap/pkg/combine"
	"foldersnap/pkg/logging"
	"foldersnap/pkg/version"

	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every snapshot command.
type options struct {
	configFile string
	output     string
	ignore     []string
	ignoreFile string
	workers    int
	gitignore  bool
	debug      bool
	quiet      bool
}

// NewRootCmd builds the command tree. Invoked without a subcommand it runs
// the default profile.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "foldersnap [directory]",
		Short: "foldersnap writes a single-file snapshot of a directory tree",
		Long: `foldersnap renders a directory as a tree diagram and concatenates the text of
its files into one Markdown or plain text document, written into the scanned
directory. With no arguments the current directory is scanned.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logging.Setup(logging.Options{
				Debug:      opts.debug,
				Quiet:      opts.quiet,
				AppName:    "foldersnap",
				AppVersion: version.Get().Version,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, combine.DefaultProfile, args, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "Path to a TOML config file (default: <directory>/.foldersnap.toml)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (default: profile file name inside <directory>)")
	flags.StringSliceVarP(&opts.ignore, "ignore", "i", nil, "Additional structural ignore patterns")
	flags.StringVar(&opts.ignoreFile, "ignore-file", "", "Ignore file with one pattern per line (default: <directory>/.snapignore)")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "Number of concurrent workers (0 = one per CPU)")
	flags.BoolVar(&opts.gitignore, "gitignore", false, "Also exclude entries listed in the root .gitignore")
	flags.BoolVar(&opts.debug, "debug", false, "Enable development logging")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Log only warnings and errors")

	for _, name := range combine.ProfileNames() {
		rootCmd.AddCommand(newProfileCmd(name, opts))
	}
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
