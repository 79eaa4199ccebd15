package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spdemo/internal/demo"
	"github.com/katalvlaran/spdemo/walker"
)

// allAlgorithms selects every registered algorithm in solve.
const allAlgorithms = "all"

const solveLongDescription = `Run a search to completion without the interactive view and print the
explored grid and a summary table.

Grid legend:
  S D   source and destination
  #     wall
  *     path
  o +   expanded and discovered cells
  2-9 W weighted cells

Use --algorithm all to compare every algorithm on the same grid.`

var (
	solveFromFlag     string
	solveToFlag       string
	solveMazeFlag     bool
	solveSeedFlag     int64
	solveMaxStepsFlag int
	solveNoGridFlag   bool
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [ROWSxCOLS]",
		Short: "Solve a grid headlessly and print the result",
		Long:  solveLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols, err := dimensions(args)
			if err != nil {
				return err
			}

			names, err := solveAlgorithms(viper.GetString(algorithmKey))
			if err != nil {
				return err
			}

			cfg := sessionConfig(rows, cols)
			cfg.Algorithm = names[0]
			session, err := demo.NewSession(cfg, slog.Default())
			if err != nil {
				return err
			}

			if err := applyEndpoints(session); err != nil {
				return err
			}

			if solveMazeFlag {
				if err := session.Maze(solveSeedFlag); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			summary := make([]summaryRow, 0, len(names))
			for _, name := range names {
				if err := session.SetAlgorithm(name); err != nil {
					return err
				}

				res, err := session.Solve(cmd.Context(), solveMaxStepsFlag)
				if errors.Is(err, walker.ErrStepLimit) {
					summary = append(summary, summaryRow{Algorithm: name, Err: walker.ErrStepLimit})
					continue
				}
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				summary = append(summary, summaryRow{Algorithm: name, Result: res})

				if solveNoGridFlag {
					continue
				}
				fmt.Fprintf(out, "%s\n", name)
				if err := renderGrid(out, session); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "open regions: %d\n", len(session.Grid().Regions(session.Diagonals())))
			fmt.Fprint(out, renderSummary(summary))

			return nil
		},
	}

	configureSolveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(newSolveCmd())
}

func configureSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&solveFromFlag, "from", "", "source as ROW,COL (default: top-left corner)")
	cmd.Flags().StringVar(&solveToFlag, "to", "", "destination as ROW,COL (default: bottom-right corner)")
	cmd.Flags().BoolVar(&solveMazeFlag, "maze", false, "carve a random maze before solving")
	cmd.Flags().Int64Var(&solveSeedFlag, seedFlagName, 1, "maze seed")
	cmd.Flags().IntVar(&solveMaxStepsFlag, "max-steps", 0, "abort a search after this many steps (0: no limit)")
	cmd.Flags().BoolVar(&solveNoGridFlag, "no-grid", false, "print only the summary table")
}

// solveAlgorithms expands "all" (any case) into every registered name and
// checks a single name against the registry.
func solveAlgorithms(name string) ([]string, error) {
	if strings.EqualFold(name, allAlgorithms) {
		return walker.Names(), nil
	}
	for _, n := range walker.Names() {
		if n == name {
			return []string{n}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q (known: %s, %s)",
		walker.ErrUnknownAlgorithm, name, strings.Join(walker.Names(), ", "), allAlgorithms)
}

func applyEndpoints(s *demo.Session) error {
	if solveFromFlag == "" && solveToFlag == "" {
		return nil
	}

	src, dst := s.Source(), s.Destination()
	var err error
	if solveFromFlag != "" {
		if src, err = parsePoint(solveFromFlag); err != nil {
			return err
		}
	}
	if solveToFlag != "" {
		if dst, err = parsePoint(solveToFlag); err != nil {
			return err
		}
	}

	return s.SetEndpoints(src, dst)
}
