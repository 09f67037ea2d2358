package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treeforge/treeforge/pkg/filesystem"
	"github.com/treeforge/treeforge/pkg/flatten"
	"github.com/treeforge/treeforge/pkg/resolve"
	"github.com/treeforge/treeforge/pkg/spec"
	"github.com/treeforge/treeforge/pkg/style"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan SPEC [VARS]",
		Short: "Show the flattened, resolved tree a spec would produce",
		Long: `Plan flattens the SPEC document, applies the optional VARS document, and
prints the resulting tree without touching the filesystem.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			specFile := args[0]
			varsFile := ""
			if len(args) > 1 {
				varsFile = args[1]
			}

			if err := validateSpecFile(specFile); err != nil {
				return err
			}
			if err := validateVarsFile(varsFile); err != nil {
				return err
			}

			fsys := filesystem.NewOS()
			node, err := spec.Load(specFile, fsys)
			if err != nil {
				return err
			}
			dm, err := flatten.Flatten(node)
			if err != nil {
				return err
			}
			if varsFile != "" {
				vars, err := spec.LoadVariables(varsFile, fsys)
				if err != nil {
					return err
				}
				if len(vars) > 0 {
					dm = resolve.Resolve(dm, vars)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), style.RenderPlan(dm, "."))
			return nil
		},
	}

	return cmd
}
