package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/validator"
)

var (
	checkSolvable bool
	maxDepth      int
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:     "validate",
	Aliases: []string{"val", "v"},
	Short:   "Validate existing puzzles",
	Long: `Validate nonogram puzzles for structural integrity and solvability.

Performs structural checks on every puzzle_*.json file in the puzzles
directory (hints fit their line length, solution shape matches hint
dimensions). When --check-solvable is enabled, it additionally runs the
solver (bounded by --max-depth) to confirm each puzzle is solvable and
records whether its solution is unique; a puzzle with several solutions
does not fail validation. Detailed per-puzzle results are written to
validation_stats.json.

Examples:
  nonogram-builder validate
  nonogram-builder val --check-solvable
  nonogram-builder v --check-solvable --max-depth 5 --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Starting puzzle validation...")
		common.Verbose("Check solvable: %v, max depth: %d", checkSolvable, maxDepth)

		if err := validator.Validate(checkSolvable, maxDepth); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVarP(&checkSolvable, "check-solvable", "s", false, "run solvability checks (may be slow)")
	validateCmd.Flags().IntVarP(&maxDepth, "max-depth", "m", 3, "max recursive search depth for solvability checks")
}

// GetCommand returns the validate command for registration with root
func GetCommand() *cobra.Command {
	return validateCmd
}
