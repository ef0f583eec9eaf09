package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"trecsweep.dev/pkg/trecsweep/internal/controller"
	"trecsweep.dev/pkg/trecsweep/internal/domain"
	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

var refsRecursiveFlag bool

// refsCmd represents the refs command, a shorthand for scan --list-used.
var refsCmd = newRefsCmd()

func newRefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refs [path]",
		Short: "List the files a project references",
		Long:  refsLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))
			workflow := domain.NewWorkflow(fsAdapter, trasher, ui)

			return workflow.Scan(context.Background(), domain.ScanArgs{
				Root:      m.Path(args[0]),
				Mode:      m.AllUnused,
				ListUsed:  true,
				Recursive: refsRecursiveFlag,
			})
		},
	}

	cmd.Flags().BoolVarP(&refsRecursiveFlag, recursiveFlagName, "r", false, "list references for every project found under the path")

	return cmd
}

func init() {
	rootCmd.AddCommand(refsCmd)
}
