package validator

import (
	"github.com/eng618/nonogram-builder/pkg/model"
	"github.com/eng618/nonogram-builder/pkg/nonogram"
)

// SolvabilityStats reports how the solver resolved one puzzle.
type SolvabilityStats struct {
	Outcome  string `json:"outcome"` // "solved", "unsolved", "controversial"
	Unique   bool   `json:"unique"`
	MaxDepth int    `json:"max_depth"`
}

// IsSolvable runs the full recursive search (the `naive` algorithm, bounded
// by maxDepth) and reports whether the puzzle has at least one solution,
// and whether that solution is unique.
func IsSolvable(p model.Puzzle, maxDepth int) (bool, SolvabilityStats, error) {
	solver := nonogram.NewSolver(hintsFromPuzzle(p.RowHints), hintsFromPuzzle(p.ColHints), maxDepth, true)
	res := solver.Solve()

	stats := SolvabilityStats{MaxDepth: maxDepth}
	switch res.Kind {
	case nonogram.Solved:
		stats.Outcome = "solved"
		stats.Unique = len(res.Solutions) == 1
		return true, stats, nil
	case nonogram.Unsolved:
		stats.Outcome = "unsolved"
		return false, stats, nil
	default:
		stats.Outcome = "controversial"
		return false, stats, nil
	}
}
