package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"trecsweep.dev/pkg/trecsweep/internal/controller"
	"trecsweep.dev/pkg/trecsweep/internal/domain"
	m "trecsweep.dev/pkg/trecsweep/internal/model"
)

var scanTrashFlag bool
var scanAllFlag bool
var scanListUsedFlag bool
var scanRecursiveFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Report or trash unused files of a project",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := m.TypedOnly
			if viper.GetBool(scanAllConfigKey) {
				mode = m.AllUnused
			}

			ui := controller.NewUI(cmd, controller.IsTTY(os.Stdout))
			workflow := domain.NewWorkflow(fsAdapter, trasher, ui)

			return workflow.Scan(context.Background(), domain.ScanArgs{
				Root:      m.Path(args[0]),
				Mode:      mode,
				Trash:     viper.GetBool(scanTrashConfigKey),
				ListUsed:  scanListUsedFlag,
				Recursive: scanRecursiveFlag,
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&scanTrashFlag, trashFlagName, viper.GetBool(scanTrashConfigKey), "send unused files to the trash instead of reporting")
	bindFlagToConfig(cmd.Flags().Lookup(trashFlagName), scanTrashConfigKey)

	cmd.Flags().BoolVarP(&scanAllFlag, allFlagName, "a", viper.GetBool(scanAllConfigKey), "consider all unused files, not just recordings")
	bindFlagToConfig(cmd.Flags().Lookup(allFlagName), scanAllConfigKey)

	cmd.Flags().BoolVarP(&scanListUsedFlag, listUsedFlagName, "u", false, "list the files the project references instead")
	cmd.Flags().BoolVarP(&scanRecursiveFlag, recursiveFlagName, "r", false, "process every project found under the path")
}
