package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treeforge/treeforge/pkg/commands/create"
	"github.com/treeforge/treeforge/pkg/style"
)

func newCreateCmd() *cobra.Command {
	var (
		dryRun bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "create ROOT SPEC [VARS]",
		Short: "Create the tree described by SPEC under ROOT",
		Long: `Create materializes the directory tree described by the SPEC document
under the existing ROOT directory. The optional VARS document maps
placeholder names to replacement strings applied to every path and file
name before creation.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, specFile := args[0], args[1]
			varsFile := ""
			if len(args) > 2 {
				varsFile = args[2]
			}

			if err := validateRoot(root); err != nil {
				return err
			}
			if err := validateSpecFile(specFile); err != nil {
				return err
			}
			if err := validateVarsFile(varsFile); err != nil {
				return err
			}

			result, err := create.Run(create.Options{
				Root:     root,
				SpecFile: specFile,
				VarsFile: varsFile,
				DryRun:   dryRun,
			})
			if err != nil {
				return err
			}

			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), style.RenderResult(result))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without writing anything")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the creation report")

	return cmd
}
