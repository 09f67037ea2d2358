package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/treeforge/treeforge/internal/version"
	"github.com/treeforge/treeforge/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "treeforge",
		Short: "Materialize directory trees from declarative specs",
		Long: `treeforge scaffolds a project skeleton on disk from a declarative spec
document: nested mappings become directories, their entries become empty
files or copies of existing ones, and ${name} placeholders in paths and
file names resolve against an optional variables document.

Re-running against a partially built tree only fills the gaps: existing
directories are tolerated and existing files are never overwritten.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
