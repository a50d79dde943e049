/*
Package batch provides the command-line interface for generating an entire
themed pack of puzzles in one pass.

The batch command generates 15 puzzles per pack, with difficulty
progression across tiers: 4 trivial, 4 easy, 4 medium, 2 hard, and a
single extreme puzzle as the pack's closer.

For pack N, puzzle IDs are calculated as: (N-1)*15+1 through (N-1)*15+15.

Usage examples:

	nonogram-builder batch --pack 1
	nonogram-builder batch --pack 2 --overwrite
	nonogram-builder batch --pack 3 --dry-run
	nonogram-builder batch --pack 4 --backup
*/
package batch

import (
	"fmt"

	"github.com/spf13/cobra"

	batchsvc "github.com/eng618/nonogram-builder/pkg/batch"
	"github.com/eng618/nonogram-builder/pkg/common"
)

var (
	packID    int
	overwrite bool
	dryRun    bool
	backup    bool
	strategy  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate all 15 puzzles for a themed pack",
	Long: `Generate an entire pack of 15 puzzles with difficulty progression:
  - Puzzles 1-4: trivial
  - Puzzles 5-8: easy
  - Puzzles 9-12: medium
  - Puzzles 13-14: hard
  - Puzzle 15: extreme (closer)

For pack N, puzzle IDs are (N-1)*15+1 through (N-1)*15+15.

The command generates puzzles sequentially, and updates packs.json with
the pack's puzzle ID list.

Examples:
  nonogram-builder batch --pack 1
  nonogram-builder batch --pack 2 --overwrite
  nonogram-builder batch --pack 3 --dry-run
  nonogram-builder batch --pack 4 --backup`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVar(&packID, "pack", 0, "pack ID to generate (required)")
	batchCmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite existing puzzle files")
	batchCmd.Flags().BoolVar(&dryRun, "dry-run", false, "preview what would be generated without writing files")
	batchCmd.Flags().BoolVar(&backup, "backup", true, "backup existing puzzles before overwriting")
	batchCmd.Flags().StringVar(&strategy, "strategy", "random-fill", "primary grid-fill strategy to use")

	batchCmd.MarkFlagRequired("pack")
}

// GetCommand returns the batch command
func GetCommand() *cobra.Command {
	return batchCmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	common.Info("Starting batch generation for pack %d...", packID)
	if packID < 1 {
		return fmt.Errorf("invalid pack ID: %d", packID)
	}

	cfg := batchsvc.Config{
		PackID:    packID,
		Overwrite: overwrite,
		DryRun:    dryRun,
		Backup:    backup,
		Strategy:  strategy,
	}

	result, err := batchsvc.GeneratePack(cfg)
	if err != nil {
		return err
	}

	if err := reportSummary(result); err != nil {
		return err
	}

	if dryRun {
		common.Info("Batch generation completed (dry run).")
		return nil
	}

	common.Info("Batch generation completed successfully!")
	return nil
}

func reportSummary(batch *batchsvc.PackBatch) error {
	common.Info("=== Batch Generation Summary ===")
	common.Info("Pack: %d", batch.PackID)
	common.Info("Total Time: %v", batch.TotalTime)
	common.Info("Success: %d / %d", batch.SuccessCount, len(batch.Puzzles))
	common.Info("Failures: %d", batch.FailureCount)

	if batch.FailureCount == 0 {
		return nil
	}

	common.Warning("Failed puzzles:")
	for _, result := range batch.Puzzles {
		if !result.Success {
			common.Warning("  Puzzle %d (%s): %s", result.PuzzleID, result.Difficulty, result.Error)
		}
	}
	return fmt.Errorf("batch generation completed with %d failures", batch.FailureCount)
}
