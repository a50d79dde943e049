package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/generator"
)

var (
	count      int
	seed       int64
	randomize  bool
	difficulty string
	strategy   string
	overwrite  bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate new nonogram puzzles",
	Long: `Generate new nonogram puzzles.

Creates a specified number of puzzles at a fixed difficulty tier, filling
each grid with the chosen strategy and retrying with a new seed until the
solver confirms the puzzle has a unique solution. Generated puzzles are
saved to puzzles/.

Examples:
  nonogram-builder generate --count 50 --difficulty medium
  nonogram-builder gen --count 10 --verbose
  nonogram-builder g -c 20 -d hard
  nonogram-builder g -c 10 --seed 12345
  nonogram-builder g -c 5 --randomize`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Starting puzzle generation...")
		common.Verbose("Generating %d %s puzzles with strategy %q", count, difficulty, strategy)
		if seed != 0 {
			common.Verbose("Using base seed: %d", seed)
		}
		if randomize {
			common.Verbose("Using randomized seeds (recorded in puzzle metadata)")
		}

		if err := generator.Generate(count, seed, randomize, difficulty, strategy, overwrite); err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}

		common.Info("Successfully generated %d puzzles", count)
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&count, "count", "c", 10, "number of puzzles to generate")
	generateCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "base seed for generation (0 = derived from puzzle ID)")
	generateCmd.Flags().BoolVarP(&randomize, "randomize", "r", false, "use cryptographically random seeds (recorded in puzzle metadata)")
	generateCmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "difficulty tier: trivial, easy, medium, hard, extreme")
	generateCmd.Flags().StringVar(&strategy, "strategy", "random-fill", "grid-fill strategy to use")
	generateCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing puzzle files")
}

// GetCommand returns the generate command for registration with root
func GetCommand() *cobra.Command {
	return generateCmd
}
