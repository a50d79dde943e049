// Package model defines the persisted on-disk shape of a puzzle, separate
// from the in-memory solving types in pkg/nonogram.
package model

// Puzzle is a complete nonogram puzzle as read from or written to a
// puzzle_<id>.json file: the row/column hints the solver consumes, plus
// generation metadata persisted for reproducibility and diagnostics.
type Puzzle struct {
	ID         int     `json:"id"`
	Difficulty string  `json:"difficulty,omitempty"` // "trivial", "easy", "medium", "hard", "extreme"
	RowHints   [][]int `json:"row_hints"`
	ColHints   [][]int `json:"col_hints"`

	// Solution, when present, is the generator's reference grid (one row
	// per string, '#'/'.' glyphs). The render command draws it directly
	// instead of solving; structural validation checks only its shape.
	Solution []string `json:"solution,omitempty"`

	// Generation metadata, not required to solve the puzzle.
	GenerationSeed      int64 `json:"generation_seed,omitempty"`
	GenerationAttempts  int   `json:"generation_attempts,omitempty"`
	GenerationElapsedMS int64 `json:"generation_elapsed_ms,omitempty"`
}

// Nrows and Ncols report the puzzle's dimensions from its hint lists.
func (p *Puzzle) Nrows() int { return len(p.RowHints) }
func (p *Puzzle) Ncols() int { return len(p.ColHints) }

// TotalCells returns the cell count of the puzzle's grid.
func (p *Puzzle) TotalCells() int { return p.Nrows() * p.Ncols() }
