package validator

import (
	"fmt"

	"github.com/eng618/nonogram-builder/pkg/model"
	"github.com/eng618/nonogram-builder/pkg/nonogram"
)

// StructuralError is a structural validation failure for a puzzle file.
type StructuralError struct {
	PuzzleID int
	Message  string
}

func (e StructuralError) Error() string {
	return fmt.Sprintf("puzzle %d: %s", e.PuzzleID, e.Message)
}

// ValidateStructural checks a puzzle's shape without running the solver:
// dimensions are positive, every hint is a positive integer, and each line's
// hints fit within its length.
func ValidateStructural(p model.Puzzle) []error {
	var errs []error

	nrows, ncols := p.Nrows(), p.Ncols()
	if nrows == 0 || ncols == 0 {
		errs = append(errs, StructuralError{p.ID, "puzzle has zero rows or columns"})
		return errs
	}

	for i, hints := range p.RowHints {
		if err := validateLineHints(p.ID, "row", i, hints, ncols); err != nil {
			errs = append(errs, err)
		}
	}
	for i, hints := range p.ColHints {
		if err := validateLineHints(p.ID, "col", i, hints, nrows); err != nil {
			errs = append(errs, err)
		}
	}

	if len(p.Solution) > 0 && len(p.Solution) != nrows {
		errs = append(errs, StructuralError{p.ID, fmt.Sprintf("solution has %d rows, expected %d", len(p.Solution), nrows)})
	}
	for i, row := range p.Solution {
		if len(row) != ncols {
			errs = append(errs, StructuralError{p.ID, fmt.Sprintf("solution row %d has length %d, expected %d", i, len(row), ncols)})
		}
	}

	return errs
}

func validateLineHints(puzzleID int, kind string, idx int, hints []int, length int) error {
	total := 0
	for _, h := range hints {
		if h <= 0 {
			return StructuralError{puzzleID, fmt.Sprintf("%s %d has a non-positive hint %d", kind, idx, h)}
		}
		total += h
	}
	if len(hints) > 0 {
		total += len(hints) - 1
	}
	if total > length {
		return StructuralError{puzzleID, fmt.Sprintf("%s %d hints %v cannot fit in length %d", kind, idx, hints, length)}
	}
	return nil
}

// hintsFromPuzzle converts the persisted [][]int hint lists into the solver's
// LineHints slices.
func hintsFromPuzzle(raw [][]int) []nonogram.LineHints {
	out := make([]nonogram.LineHints, len(raw))
	for i, h := range raw {
		out[i] = nonogram.LineHints(h)
	}
	return out
}
