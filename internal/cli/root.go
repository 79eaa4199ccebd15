// Package cli provides the root command and CLI setup for spdemo.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	algorithmFlag string
	diagonalsFlag bool
	brushFlag     string
	logFileFlag   string
	verboseFlag   bool
)

const rootLongDescription = `spdemo animates shortest-path searches on an editable grid.

Walls and weighted cells are painted with the mouse, the search advances
one expanded cell per frame, and the finished path is highlighted with its
length and weight. A*, Dijkstra and breadth-first search are available.

Grid dimensions are given as ROWSxCOLS, for example 20x40.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func init() {
	configureRootFlags(rootCmd)
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "spdemo",
		Short:         "Interactive shortest-path demonstrator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd returns a root command with the shared flags but without
// subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&algorithmFlag, algorithmFlagName, "a", viper.GetString(algorithmKey), "search algorithm (A*, Dijkstra, BFS)")
	bindFlagToConfig(flags.Lookup(algorithmFlagName), algorithmKey)

	flags.BoolVar(&diagonalsFlag, diagonalsFlagName, viper.GetBool(diagonalsKey), "allow diagonal moves")
	bindFlagToConfig(flags.Lookup(diagonalsFlagName), diagonalsKey)

	flags.StringVar(&brushFlag, brushFlagName, viper.GetString(brushKey), "initial brush (Wall or Weight-N)")
	bindFlagToConfig(flags.Lookup(brushFlagName), brushKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts cancel the context so a long headless solve stops between steps.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
