package clean

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/generator"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated puzzles and the pack registry",
	Long: `Remove all generated puzzle files and the pack registry.

Deletes:
  - All puzzle_*.json files in puzzles/
  - puzzles/packs.json

This is a destructive operation. Use with caution.

Examples:
  nonogram-builder clean
  nonogram-builder clean --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		common.Info("Cleaning generated puzzles...")
		common.Verbose("Deleting puzzle files and packs.json")

		if err := generator.Clean(); err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}

		common.Info("Successfully cleaned generated puzzles")
		return nil
	},
}

// GetCommand returns the clean command for registration with root
func GetCommand() *cobra.Command {
	return cleanCmd
}
