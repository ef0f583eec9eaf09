// Package cmd provides the root command and CLI setup for trecsweep.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"trecsweep.dev/pkg/trecsweep/internal/adapter"
)

var fsAdapter adapter.ProjectFSAdapter
var trasher adapter.Trasher

// verboseFlag switches file logging to debug level.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalProjectFSAdapter()
	trasher = adapter.NewXDGTrash()
}

const pathArgumentHelp = `The path argument may point at a project file directly or at a
directory; a directory is searched for a document named after it,
falling back to the first .tscproj file found inside.`

const rootLongDescription = `Trecsweep finds recording files (.trec) that a Camtasia project no
longer references and reports them or moves them to the trash.

` + pathArgumentHelp

const scanLongDescription = `Scan one project for unused files (default: unreferenced .trec
recordings only).

Nothing is deleted unless --trash is given; by default every candidate
is listed with the action --trash would take. With --all every
unreferenced file is considered, except project and config documents.

` + pathArgumentHelp

const refsLongDescription = `List every file the project document references, marking entries that
are missing from the project directory.

` + pathArgumentHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trecsweep",
		Short: "Clean up unused Camtasia recording files",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
			// Tag every record of this invocation so interleaved runs can
			// be told apart in the rotated log.
			slog.SetDefault(slog.Default().With("run_id", uuid.NewString()))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().
		StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
