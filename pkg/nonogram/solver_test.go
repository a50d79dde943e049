package nonogram

import (
	"sort"
	"strings"
	"testing"
)

func fieldStrings(sols map[string]*Field) []string {
	out := make([]string, 0, len(sols))
	for _, f := range sols {
		out = append(out, f.String())
	}
	sort.Strings(out)
	return out
}

func TestSolveByLinesUniqueSolution(t *testing.T) {
	s := NewSolver(
		[]LineHints{{5}, {1}, {5}, {1}, {5}},
		[]LineHints{{3, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 3}},
		0, false,
	)
	res := s.Solve()
	if res.Kind != Solved {
		t.Fatalf("expected Solved, got %v", res.Kind)
	}
	want := "#####\n#....\n#####\n....#\n#####\n"
	got := fieldStrings(res.Solutions)
	if len(got) != 1 || got[0] != want {
		t.Fatalf("got %v, want [%q]", got, want)
	}
}

func TestSolveAmbiguousFindAll(t *testing.T) {
	s := NewSolver(
		[]LineHints{{1}, {1}},
		[]LineHints{{1}, {1}},
		3, true,
	)
	res := s.Solve()
	if res.Kind != Solved {
		t.Fatalf("expected Solved, got %v", res.Kind)
	}
	want := []string{"#.\n.#\n", ".#\n#.\n"}
	sort.Strings(want)
	got := fieldStrings(res.Solutions)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSolveAmbiguousFindFirstIsDeterministic(t *testing.T) {
	s := NewSolver(
		[]LineHints{{1}, {1}},
		[]LineHints{{1}, {1}},
		3, false,
	)
	res := s.Solve()
	if res.Kind != Solved {
		t.Fatalf("expected Solved, got %v", res.Kind)
	}
	if len(res.Solutions) != 1 {
		t.Fatalf("expected exactly one solution, got %d", len(res.Solutions))
	}
	want := "#.\n.#\n"
	for _, f := range res.Solutions {
		if got := f.String(); got != want {
			t.Fatalf("first solution = %q, want %q (row-major, Filled-first trial order)", got, want)
		}
	}
}

func TestSolveDoubleAmbiguousNaive(t *testing.T) {
	s := NewSolver(
		[]LineHints{{1, 1}, {1, 1}},
		[]LineHints{{1}, {1}, {}, {1}, {1}},
		2, true,
	)
	res := s.Solve()
	if res.Kind != Solved {
		t.Fatalf("expected Solved, got %v", res.Kind)
	}
	want := []string{
		"#..#.\n.#..#\n",
		"#...#\n.#.#.\n",
		".#..#\n#..#.\n",
		".#.#.\n#...#\n",
	}
	sort.Strings(want)
	got := fieldStrings(res.Solutions)
	if len(got) != len(want) {
		t.Fatalf("got %d solutions %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSolveControversial(t *testing.T) {
	s := NewSolver(
		[]LineHints{{2}},
		[]LineHints{{1}, {1}, {1}},
		3, false,
	)
	res := s.Solve()
	if res.Kind != Controversial {
		t.Fatalf("expected Controversial, got %v", res.Kind)
	}
}

func TestSolveByLinesOnlyAlgorithm(t *testing.T) {
	s := NewSolver(
		[]LineHints{{5}, {1}, {5}, {1}, {5}},
		[]LineHints{{3, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 3}},
		0, false,
	)
	res := s.SolveWith(AlgorithmByLines)
	if res.Kind != Solved {
		t.Fatalf("expected Solved via by-lines algorithm, got %v", res.Kind)
	}
}

func TestSolve2SATSolvesUniquePuzzle(t *testing.T) {
	s := NewSolver(
		[]LineHints{{5}, {1}, {5}, {1}, {5}},
		[]LineHints{{3, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 3}},
		3, false,
	)
	res := s.SolveWith(Algorithm2SAT)
	if res.Kind != Solved {
		t.Fatalf("expected Solved via 2sat algorithm, got %v", res.Kind)
	}
}

func TestFromReaderDecodesPuzzleDescription(t *testing.T) {
	body := `{"row_hints":[[1],[1]],"col_hints":[[1],[1]]}`
	s, err := FromReader(strings.NewReader(body), 3, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := s.Solve()
	if res.Kind != Solved {
		t.Fatalf("expected Solved, got %v", res.Kind)
	}
}

func TestFromReaderRejectsMalformedJSON(t *testing.T) {
	_, err := FromReader(strings.NewReader("not json"), 3, false)
	if err == nil {
		t.Fatalf("expected a decoding error")
	}
}

func TestFindAllReturnsSupersetOfFindFirst(t *testing.T) {
	all := NewSolver(
		[]LineHints{{1, 1}, {1, 1}},
		[]LineHints{{1}, {1}, {}, {1}, {1}},
		2, true,
	).Solve()
	first := NewSolver(
		[]LineHints{{1, 1}, {1, 1}},
		[]LineHints{{1}, {1}, {}, {1}, {1}},
		2, false,
	).Solve()
	if all.Kind != Solved || first.Kind != Solved {
		t.Fatalf("expected both to solve")
	}
	if len(first.Solutions) != 1 {
		t.Fatalf("find_all=false should return exactly one solution, got %d", len(first.Solutions))
	}
	for k := range first.Solutions {
		if _, ok := all.Solutions[k]; !ok {
			t.Fatalf("find_all=false solution %q not present among find_all=true solutions", k)
		}
	}
}
