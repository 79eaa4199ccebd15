package cli

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spdemo/internal/demo"
	"github.com/katalvlaran/spdemo/internal/tui"
)

const runLongDescription = `Open the interactive demonstrator in the terminal.

  space   start, pause or resume the search
  mouse   paint with the current brush, drag S or D to move an endpoint
  esc     open the menu (algorithm, brush, diagonals); esc again applies
  m / b   carve a maze / breach walls between S and D
  c       clear everything
  q       quit`

var runFPSFlag int
var runSeedFlag int64

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [ROWSxCOLS]",
		Short: "Run the interactive demonstrator",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := dimensions(args)
			if err != nil {
				return err
			}

			session, err := demo.NewSession(sessionConfig(rows, cols), slog.Default())
			if err != nil {
				return err
			}

			seed := runSeedFlag
			if !cmd.Flags().Changed(seedFlagName) {
				seed = time.Now().UnixNano()
			}

			slog.Info("Starting demonstrator", "rows", rows, "cols", cols, "fps", viper.GetInt(fpsKey), "seed", seed)

			return tui.Run(session, tui.Options{
				FPS:    viper.GetInt(fpsKey),
				Seed:   seed,
				Output: cmd.OutOrStdout(),
				Logger: slog.Default(),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newRunCmd())
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&runFPSFlag, fpsFlagName, viper.GetInt(fpsKey), "search steps per second")
	bindFlagToConfig(cmd.Flags().Lookup(fpsFlagName), fpsKey)
	cmd.Flags().Int64Var(&runSeedFlag, seedFlagName, 0, "seed of the first maze (default: current time)")
}
