package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eng618/nonogram-builder/pkg/common"
	"github.com/eng618/nonogram-builder/pkg/validator"
)

// statsCmd summarizes validation_stats.json, produced by `validate
// --check-solvable`.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the last validation run's per-puzzle statistics",
	Long: `Summarize validation_stats.json: how many puzzles were solvable,
how many had a unique solution, and average/max solve time.

Examples:
  nonogram-builder stats
  nonogram-builder stats --file puzzles/data/validation_stats.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := fileFlag
		if path == "" {
			p, err := common.DataDir()
			if err != nil {
				return fmt.Errorf("failed to resolve data directory: %w", err)
			}
			path = p + "/validation_stats.json"
		}
		return summarize(path)
	},
}

var fileFlag string

func init() {
	statsCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "path to validation_stats.json (default: <data dir>/validation_stats.json)")
}

// GetCommand returns the stats command for registration with root
func GetCommand() *cobra.Command {
	return statsCmd
}

func summarize(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	var puzzleStats []validator.PuzzleStat
	if err := json.Unmarshal(b, &puzzleStats); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(puzzleStats) == 0 {
		common.Info("%s: no puzzles recorded", path)
		return nil
	}

	solvable, unique := 0, 0
	var totalMs, maxMs int64
	for _, s := range puzzleStats {
		if s.Solvable {
			solvable++
		}
		if s.Unique {
			unique++
		}
		totalMs += s.TimeMs
		if s.TimeMs > maxMs {
			maxMs = s.TimeMs
		}
	}

	n := len(puzzleStats)
	common.Info("%s: puzzles=%d solvable=%d unique=%d avg_time_ms=%.1f max_time_ms=%d",
		path, n, solvable, unique, float64(totalMs)/float64(n), maxMs)
	return nil
}
