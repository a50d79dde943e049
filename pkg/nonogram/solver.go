package nonogram

import (
	"encoding/json"
	"fmt"
	"io"
)

// Algorithm names the search strategy a Solver dispatches into.
type Algorithm string

const (
	AlgorithmByLines Algorithm = "by-lines"
	AlgorithmNaive   Algorithm = "naive"
	Algorithm2SAT    Algorithm = "2sat"
)

// puzzleDescription is the JSON shape documented for the solver's input.
type puzzleDescription struct {
	RowHints []LineHints `json:"row_hints"`
	ColHints []LineHints `json:"col_hints"`
}

// Solver is the driver: it owns the row/column hints, a per-line cache for
// each, and the search configuration (max recursion depth, whether to
// enumerate every solution).
type Solver struct {
	rowHints []LineHints
	colHints []LineHints
	rowCache []*LineCache
	colCache []*LineCache
	maxDepth int
	findAll  bool
}

// NewSolver builds a driver over explicit hints.
func NewSolver(rowHints, colHints []LineHints, maxDepth int, findAll bool) *Solver {
	rowCache := make([]*LineCache, len(rowHints))
	for i := range rowCache {
		rowCache[i] = NewLineCache()
	}
	colCache := make([]*LineCache, len(colHints))
	for i := range colCache {
		colCache[i] = NewLineCache()
	}
	return &Solver{
		rowHints: rowHints,
		colHints: colHints,
		rowCache: rowCache,
		colCache: colCache,
		maxDepth: maxDepth,
		findAll:  findAll,
	}
}

// FromReader decodes a puzzle description (spec §6's JSON shape) and builds
// a Solver from it.
func FromReader(r io.Reader, maxDepth int, findAll bool) (*Solver, error) {
	var descr puzzleDescription
	if err := json.NewDecoder(r).Decode(&descr); err != nil {
		return nil, fmt.Errorf("nonogram: decoding puzzle description: %w", err)
	}
	return NewSolver(descr.RowHints, descr.ColHints, maxDepth, findAll), nil
}

// CreateField allocates a fresh, all-Unknown field of this puzzle's
// dimensions.
func (s *Solver) CreateField() *Field {
	return NewField(s.nrows(), s.ncols())
}

func (s *Solver) nrows() int { return len(s.rowHints) }
func (s *Solver) ncols() int { return len(s.colHints) }

// RowHints returns the driver's row hints, for callers that need to render
// alongside a solved or partial field.
func (s *Solver) RowHints() []LineHints { return s.rowHints }

// ColHints returns the driver's column hints.
func (s *Solver) ColHints() []LineHints { return s.colHints }

func (s *Solver) hints(t LineType, idx int) LineHints {
	if t == Row {
		return s.rowHints[idx]
	}
	return s.colHints[idx]
}

func (s *Solver) cache(t LineType, idx int) *LineCache {
	if t == Row {
		return s.rowCache[idx]
	}
	return s.colCache[idx]
}

func (s *Solver) line(field *Field, t LineType, idx int) *Line {
	var cells []CellValue
	if t == Row {
		cells = field.Row(idx)
	} else {
		cells = field.Col(idx)
	}
	return newLine(t, idx, s.hints(t, idx), cells)
}

// doSolveByLinesStep runs the propagator on every line flagged dirty in
// lineChanges (a per-index touch count; >0 means dirty), applying any
// forced cells directly onto field. ok=false signals a contradiction.
func (s *Solver) doSolveByLinesStep(field *Field, lineType LineType, lineChanges []int) (ok bool, allChanges []Assumption) {
	for idx, touched := range lineChanges {
		if touched <= 0 {
			continue
		}
		line := s.line(field, lineType, idx)
		sol := line.Solve(s.cache(lineType, idx))
		if !sol.Possible {
			return false, nil
		}
		if len(sol.Changes) > 0 {
			applyChanges(sol.Changes, field, &allChanges)
		}
	}
	return true, allChanges
}

// doSolveByLines is the fixed-point line harness: it alternates row and
// column passes, restricting work to lines touched since the previous
// pass, until a pass yields no changes or a contradiction occurs.
func (s *Solver) doSolveByLines(field *Field, changedRows, changedCols []int) *SolutionResult {
	work := field.Clone()
	var allChanges []Assumption

	ok, changes := s.doSolveByLinesStep(work, Row, changedRows)
	if !ok {
		return controversialResult()
	}
	allChanges = append(allChanges, changes...)

	lineType := Col
	changedIdxs := append([]int(nil), changedCols...)
	for _, ass := range changes {
		changedIdxs[ass.Coords.Col]++
	}
	for {
		ok, changes := s.doSolveByLinesStep(work, lineType, changedIdxs)
		if !ok {
			return controversialResult()
		}
		if len(changes) == 0 {
			if work.IsSolved() {
				return solvedResult(work)
			}
			return unsolvedResult(work, allChanges)
		}

		var size int
		if lineType.Other() == Row {
			size = s.nrows()
		} else {
			size = s.ncols()
		}
		changedIdxs = make([]int, size)
		for _, ass := range changes {
			changedIdxs[ass.LineIdx(lineType.Other())]++
		}
		allChanges = append(allChanges, changes...)
		lineType = lineType.Other()
	}
}

// SolveByLines runs the fixed-point harness alone, starting with every line
// dirty — the `by-lines` algorithm.
func (s *Solver) SolveByLines() *SolutionResult {
	return s.doSolveByLines(s.CreateField(), onesInt(s.nrows()), onesInt(s.ncols()))
}

func (s *Solver) iterCoords(yield func(Coords) bool) {
	for r := 0; r < s.nrows(); r++ {
		for c := 0; c < s.ncols(); c++ {
			if !yield(Coords{Row: r, Col: c}) {
				return
			}
		}
	}
}

// doStep tries both known values at every Unknown cell, in row-major order,
// recursing into doSolve at the given depth. A contradiction on both values
// at the same cell makes the whole call Controversial; a contradiction on
// one value forces the other permanently.
func (s *Solver) doStep(field *Field, depth int) *SolutionResult {
	work := field.Clone()
	var allChanges []Assumption
	solutions := make(map[string]*Field)
	hasUnsolved := false
	changedRows := make([]int, s.nrows())
	changedCols := make([]int, s.ncols())

	var result *SolutionResult
	s.iterCoords(func(coords Coords) bool {
		if work.Get(coords) != Unknown {
			return true
		}
		hasControversy := false
		for _, val := range Known {
			ass := Assumption{Coords: coords, Val: val}
			ass.Apply(work)
			changedRows[coords.Row]++
			changedCols[coords.Col]++
			res := s.doSolve(work, depth, changedRows, changedCols)
			switch res.Kind {
			case Solved:
				extendSolutions(solutions, res.Solutions)
				if !s.findAll {
					result = &SolutionResult{Kind: Solved, Solutions: solutions, Field: res.Field}
					return false
				}
				ass.Unapply(work)
				changedRows[coords.Row]--
				changedCols[coords.Col]--
			case Unsolved:
				hasUnsolved = true
				ass.Unapply(work)
				changedRows[coords.Row]--
				changedCols[coords.Col]--
			case Controversial:
				if hasControversy {
					result = controversialResult()
					return false
				}
				inv := ass.Invert()
				inv.Apply(work)
				allChanges = append(allChanges, inv)
				hasControversy = true
			}
		}
		return true
	})
	if result != nil {
		return result
	}

	if len(solutions) > 0 && !(hasUnsolved && s.findAll) {
		return &SolutionResult{Kind: Solved, Solutions: solutions, Field: work}
	}
	return unsolvedResult(work, allChanges)
}

// doSolve is the depth-bounded recursive core: it runs the line harness to
// fixpoint, then iteratively deepens the cell-stepping search from depth 0
// up to maxDepth-1, restarting the harness whenever stepping forces new
// cells.
func (s *Solver) doSolve(field *Field, maxDepth int, changedRows, changedCols []int) *SolutionResult {
	work := field.Clone()
	var allChanges []Assumption
	curRows := append([]int(nil), changedRows...)
	curCols := append([]int(nil), changedCols...)

	for {
		byLines := s.doSolveByLines(work, curRows, curCols)
		switch byLines.Kind {
		case Controversial, Solved:
			return byLines
		case Unsolved:
			if maxDepth == 0 {
				return unsolvedResult(byLines.Field, append(allChanges, byLines.Changes...))
			}
			applyChanges(byLines.Changes, work, &allChanges)
		}

		for i := range curRows {
			curRows[i] = 0
		}
		for i := range curCols {
			curCols[i] = 0
		}

		progressed := false
		for depth := 0; depth < maxDepth; depth++ {
			byStep := s.doStep(work, depth)
			switch byStep.Kind {
			case Solved, Controversial:
				return byStep
			case Unsolved:
				if len(byStep.Changes) > 0 {
					applyChanges(byStep.Changes, work, &allChanges)
					for _, ass := range byStep.Changes {
						curRows[ass.Coords.Row]++
						curCols[ass.Coords.Col]++
					}
					progressed = true
				}
			}
			if progressed {
				break
			}
		}
		if !progressed {
			return unsolvedResult(work, allChanges)
		}
	}
}

// Solve runs the full recursive case-split search ("naive") from an empty
// field.
func (s *Solver) Solve() *SolutionResult {
	return s.doSolve(s.CreateField(), s.maxDepth, onesInt(s.nrows()), onesInt(s.ncols()))
}

// SolveWith dispatches to the named algorithm, the external Driver surface.
func (s *Solver) SolveWith(alg Algorithm) *SolutionResult {
	switch alg {
	case AlgorithmByLines:
		return s.SolveByLines()
	case Algorithm2SAT:
		return s.Solve2SAT()
	default:
		return s.Solve()
	}
}

func onesInt(n int) []int {
	v := make([]int, n)
	for i := range v {
		v[i] = 1
	}
	return v
}
