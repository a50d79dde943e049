package generator

import (
	"testing"

	"github.com/eng618/nonogram-builder/pkg/validator"
)

func TestGenerateOneProducesUniquelySolvablePuzzle(t *testing.T) {
	puzzle, stats, err := GenerateOne(1, "trivial", "random-fill", 42)
	if err != nil {
		t.Fatalf("GenerateOne failed: %v", err)
	}
	if stats.Attempts < 1 {
		t.Fatalf("expected at least one attempt, got %d", stats.Attempts)
	}

	ok, solvability, err := validator.IsSolvable(puzzle, 0)
	if err != nil {
		t.Fatalf("unexpected solvability error: %v", err)
	}
	if !ok || !solvability.Unique {
		t.Fatalf("expected a uniquely solvable puzzle, got ok=%v stats=%+v", ok, solvability)
	}
}

func TestGenerateOneRejectsUnknownDifficulty(t *testing.T) {
	if _, _, err := GenerateOne(1, "impossible", "random-fill", 1); err == nil {
		t.Fatal("expected an error for an unknown difficulty tier")
	}
}

func TestGenerateOneRejectsUnknownStrategy(t *testing.T) {
	if _, _, err := GenerateOne(1, "trivial", "does-not-exist", 1); err == nil {
		t.Fatal("expected an error for an unregistered strategy")
	}
}

func TestHintsFromGridMatchesRunLengths(t *testing.T) {
	grid := [][]bool{
		{true, true, false, true},
		{false, false, false, false},
		{true, false, true, true},
	}
	rowHints, colHints := hintsFromGrid(grid)

	wantRows := [][]int{{2, 1}, nil, {1, 2}}
	for i, want := range wantRows {
		if !equalInts(rowHints[i], want) {
			t.Errorf("row %d: got %v, want %v", i, rowHints[i], want)
		}
	}

	wantCols := [][]int{{1, 1}, {1}, {1}, {1, 1}}
	for i, want := range wantCols {
		if !equalInts(colHints[i], want) {
			t.Errorf("col %d: got %v, want %v", i, colHints[i], want)
		}
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListStrategiesIncludesRegisteredBuiltins(t *testing.T) {
	names := map[string]bool{}
	for _, info := range ListStrategies() {
		names[info.Name] = true
	}
	for _, want := range []string{"random-fill", "symmetric"} {
		if !names[want] {
			t.Errorf("expected %q to be registered", want)
		}
	}
}
