package solve

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/nonogram"
)

var (
	maxDepth  int
	findAll   bool
	algorithm string
)

// solveCmd is the primary solver entry point: reads a puzzle description
// (row/col hints) and reports the solver's tagged outcome.
var solveCmd = &cobra.Command{
	Use:   "solve [fname]",
	Short: "Solve a nonogram puzzle description",
	Long: `Solve a nonogram puzzle description.

Reads a JSON puzzle description (row_hints/col_hints) from fname, or from
stdin if fname is omitted, runs the selected algorithm, and renders the
outcome to stdout: a unique (or, with --find-all, every) solution, the
partial field and its count of undetermined cells if the search bottomed
out short of a full solution, or a report that the hints admit no
completion at all.

Examples:
  nonogram-builder solve puzzles/puzzle_1.json
  nonogram-builder solve --algorithm by-lines puzzles/puzzle_1.json
  nonogram-builder solve --find-all --max-depth 5 < puzzle.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			r = f
		}

		solver, err := nonogram.FromReader(r, maxDepth, findAll)
		if err != nil {
			return fmt.Errorf("failed to parse puzzle description: %w", err)
		}

		alg, err := parseAlgorithm(algorithm)
		if err != nil {
			return err
		}

		start := time.Now()
		result := solver.SolveWith(alg)
		elapsed := time.Since(start)

		reportResult(cmd, result, solver)
		common.Verbose("solved in %v using algorithm %q", elapsed, algorithm)
		return nil
	},
}

func init() {
	solveCmd.Flags().IntVarP(&maxDepth, "max-depth", "m", 3, "max recursive search depth for the naive/2sat algorithms")
	solveCmd.Flags().BoolVarP(&findAll, "find-all", "f", false, "find every distinct solution instead of stopping at the first")
	solveCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "naive", "algorithm: by-lines, naive, or 2sat")
}

// GetCommand returns the solve command for registration with root
func GetCommand() *cobra.Command {
	return solveCmd
}

func parseAlgorithm(name string) (nonogram.Algorithm, error) {
	switch name {
	case "by-lines":
		return nonogram.AlgorithmByLines, nil
	case "naive":
		return nonogram.AlgorithmNaive, nil
	case "2sat":
		return nonogram.Algorithm2SAT, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q: want by-lines, naive, or 2sat", name)
	}
}

func reportResult(cmd *cobra.Command, result *nonogram.SolutionResult, solver *nonogram.Solver) {
	w := cmd.OutOrStdout()
	rowHints, colHints := solver.RowHints(), solver.ColHints()

	switch result.Kind {
	case nonogram.Controversial:
		fmt.Fprintln(w, "Controversial: the given hints admit no completion")
	case nonogram.Unsolved:
		fmt.Fprintf(w, "Cannot solve; info so far (%d cell(s) still undetermined):\n\n", countUnknown(result.Field))
		common.RenderFieldToWriter(w, result.Field, rowHints, colHints, "unicode", true)
	case nonogram.Solved:
		if len(result.Solutions) > 1 {
			fmt.Fprintf(w, "solved: %d distinct solutions found\n\n", len(result.Solutions))
			i := 0
			for _, field := range result.Solutions {
				fmt.Fprintf(w, "--- solution %d ---\n", i+1)
				common.RenderFieldToWriter(w, field, rowHints, colHints, "unicode", true)
				i++
			}
			return
		}
		fmt.Fprintln(w, "solved:")
		for _, field := range result.Solutions {
			common.RenderFieldToWriter(w, field, rowHints, colHints, "unicode", true)
		}
	}
}

func countUnknown(field *nonogram.Field) int {
	count := 0
	for r := 0; r < field.Nrows(); r++ {
		for c := 0; c < field.Ncols(); c++ {
			if field.Get(nonogram.Coords{Row: r, Col: c}) == nonogram.Unknown {
				count++
			}
		}
	}
	return count
}
