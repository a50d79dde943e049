package nonogram

// refinement is a solve step the 2-SAT accelerator falls back on to resolve
// a speculative pair of assumptions: either the line harness alone or the
// full recursive search.
type refinement func(field *Field) *SolutionResult

func (s *Solver) harnessRefinement(field *Field) *SolutionResult {
	return s.doSolveByLines(field, onesInt(s.nrows()), onesInt(s.ncols()))
}

func (s *Solver) recursiveRefinement(maxDepth int) refinement {
	return func(field *Field) *SolutionResult {
		return s.doSolve(field, maxDepth, onesInt(s.nrows()), onesInt(s.ncols()))
	}
}

// doSolve2SATStep sweeps every pair of distinct Unknown cells in
// lexicographic coordinate order and every value combination, building an
// implication graph from contradicting pairs, then forces any literal that
// graph proves impossible.
func (s *Solver) doSolve2SATStep(field *Field, refine refinement) *SolutionResult {
	var unknowns []Coords
	s.iterCoords(func(c Coords) bool {
		if field.Get(c) == Unknown {
			unknowns = append(unknowns, c)
		}
		return true
	})

	graph := NewReachabilityGraph()
	solutions := make(map[string]*Field)
	var anySolution *Field
	hasUnsolved := false

	for i := 0; i < len(unknowns); i++ {
		for j := i + 1; j < len(unknowns); j++ {
			c1, c2 := unknowns[i], unknowns[j]
			for _, v1 := range Known {
				for _, v2 := range Known {
					a1 := Assumption{Coords: c1, Val: v1}
					a2 := Assumption{Coords: c2, Val: v2}
					if graph.IsReachable(a1, a2.Invert()) {
						continue
					}

					trial := field.Clone()
					a1.Apply(trial)
					a2.Apply(trial)
					res := refine(trial)
					switch res.Kind {
					case Controversial:
						graph.SetReachable(a1, a2.Invert())
						graph.SetReachable(a2, a1.Invert())
					case Solved:
						extendSolutions(solutions, res.Solutions)
						if anySolution == nil {
							anySolution = res.Field
						}
					case Unsolved:
						hasUnsolved = true
					}
				}
			}
		}
	}

	if len(solutions) > 0 {
		if !s.findAll || !hasUnsolved {
			return &SolutionResult{Kind: Solved, Field: anySolution, Solutions: solutions}
		}
	}

	impossible := graph.ImpossibleLiterals()
	if len(impossible) == 0 {
		return unsolvedResult(field, nil)
	}

	work := field.Clone()
	var forced []Assumption
	for _, lit := range impossible {
		inv := lit.Invert()
		cur := work.Get(inv.Coords)
		switch cur {
		case Unknown:
			inv.Apply(work)
			forced = append(forced, inv)
		case inv.Val:
			// already forced, nothing to do
		default:
			return controversialResult()
		}
	}

	harnessed := s.doSolveByLines(work, onesInt(s.nrows()), onesInt(s.ncols()))
	if harnessed.Kind != Unsolved {
		return harnessed
	}
	allChanges := append(append([]Assumption(nil), forced...), harnessed.Changes...)
	return unsolvedResult(harnessed.Field, allChanges)
}

// Solve2SAT runs the 2-SAT-style accelerator: harness to fixpoint, then
// repeated 2-SAT passes refined by the harness alone until no further
// forcing, then repeated passes refined by the full recursive search until
// no further forcing.
func (s *Solver) Solve2SAT() *SolutionResult {
	field := s.CreateField()

	harnessed := s.doSolveByLines(field, onesInt(s.nrows()), onesInt(s.ncols()))
	if harnessed.Kind != Unsolved {
		return harnessed
	}
	current := harnessed.Field

	for {
		step := s.doSolve2SATStep(current, s.harnessRefinement)
		if step.Kind != Unsolved {
			return step
		}
		if len(step.Changes) == 0 {
			break
		}
		current = step.Field
	}

	for {
		step := s.doSolve2SATStep(current, s.recursiveRefinement(s.maxDepth))
		if step.Kind != Unsolved {
			return step
		}
		if len(step.Changes) == 0 {
			break
		}
		current = step.Field
	}

	return unsolvedResult(current, nil)
}
