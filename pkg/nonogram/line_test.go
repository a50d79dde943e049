package nonogram

import (
	"reflect"
	"testing"
)

func parseCells(s string) []CellValue {
	cells := make([]CellValue, len(s))
	for i, ch := range s {
		switch ch {
		case '#':
			cells[i] = Filled
		case '.':
			cells[i] = Empty
		default:
			cells[i] = Unknown
		}
	}
	return cells
}

func TestLineSolveScenarios(t *testing.T) {
	cases := []struct {
		name    string
		hints   LineHints
		cells   string
		want    map[int]CellValue // index -> forced value
		unknown bool              // want Possible == false
	}{
		{
			name:  "single run forces gap and start",
			hints: LineHints{4},
			cells: "~~~~~#~~",
			want:  map[int]CellValue{0: Empty, 1: Empty, 4: Filled},
		},
		{
			name:  "two runs force single gap cell",
			hints: LineHints{1, 2},
			cells: "~~~#.~~",
			want:  map[int]CellValue{1: Empty},
		},
		{
			name:  "trailing filled forces leading empties",
			hints: LineHints{2, 1},
			cells: "~~~.~#~.#",
			want:  map[int]CellValue{0: Empty, 1: Empty, 2: Empty},
		},
		{
			name:    "hints cannot fit",
			hints:   LineHints{2, 3},
			cells:   "~~~~~",
			unknown: true,
		},
		{
			name:  "no hints forces all empty",
			hints: LineHints{},
			cells: "~~~~",
			want:  map[int]CellValue{0: Empty, 1: Empty, 2: Empty, 3: Empty},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cells := parseCells(tc.cells)
			line := newLine(Row, 0, tc.hints, cells)
			ok, changes := line.doSolve()
			if tc.unknown {
				if ok {
					t.Fatalf("expected contradiction, got changes=%v", changes)
				}
				return
			}
			if !ok {
				t.Fatalf("expected a solution, got contradiction")
			}
			got := make(map[int]CellValue)
			for _, ass := range changes {
				got[ass.Coords.Col] = ass.Val
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("forced cells = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLineSolveMemoizationIsSound(t *testing.T) {
	hints := LineHints{2, 1}
	cells := parseCells("~~~~~")
	cache := NewLineCache()

	l1 := newLine(Row, 0, hints, cells)
	r1 := l1.Solve(cache)

	l2 := newLine(Row, 0, hints, cells)
	r2 := l2.Solve(cache)

	if r1 != r2 {
		t.Fatalf("expected identical cached result, got distinct pointers with values %v, %v", r1, r2)
	}
}

func TestLineSolveIdempotent(t *testing.T) {
	hints := LineHints{4}
	cells := parseCells("~~~~~#~~")
	cache := NewLineCache()

	l := newLine(Row, 0, hints, cells)
	sol := l.Solve(cache)
	if !sol.Possible {
		t.Fatalf("expected a solvable line")
	}

	applied := append([]CellValue(nil), cells...)
	for _, ass := range sol.Changes {
		applied[ass.Coords.Col] = ass.Val
	}

	l2 := newLine(Row, 0, hints, applied)
	sol2 := l2.Solve(cache)
	if !sol2.Possible {
		t.Fatalf("expected a solvable line on second pass")
	}
	if len(sol2.Changes) != 0 {
		t.Fatalf("expected no further forced cells, got %v", sol2.Changes)
	}
}
