package validator

import (
	"testing"

	"github.com/eng618/nonogram-builder/pkg/model"
)

func TestValidateStructuralAcceptsWellFormedPuzzle(t *testing.T) {
	p := model.Puzzle{
		ID:       1,
		RowHints: [][]int{{1}, {1}},
		ColHints: [][]int{{1}, {1}},
	}
	if errs := ValidateStructural(p); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateStructuralRejectsOverflowingHints(t *testing.T) {
	p := model.Puzzle{
		ID:       2,
		RowHints: [][]int{{2, 3}},
		ColHints: [][]int{{1}, {1}, {1}, {1}, {1}},
	}
	errs := ValidateStructural(p)
	if len(errs) == 0 {
		t.Fatalf("expected hints [2,3] over a length-5 row to fail")
	}
}

func TestValidateStructuralRejectsNonPositiveHint(t *testing.T) {
	p := model.Puzzle{
		ID:       3,
		RowHints: [][]int{{0}},
		ColHints: [][]int{{1}},
	}
	errs := ValidateStructural(p)
	if len(errs) == 0 {
		t.Fatalf("expected a non-positive hint to fail validation")
	}
}

func TestIsSolvableDetectsUniqueSolution(t *testing.T) {
	p := model.Puzzle{
		ID:       4,
		RowHints: [][]int{{5}, {1}, {5}, {1}, {5}},
		ColHints: [][]int{{3, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 3}},
	}
	ok, stats, err := IsSolvable(p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || !stats.Unique {
		t.Fatalf("expected a unique solution, got ok=%v stats=%+v", ok, stats)
	}
}

func TestIsSolvableDetectsControversialPuzzle(t *testing.T) {
	p := model.Puzzle{
		ID:       5,
		RowHints: [][]int{{2}},
		ColHints: [][]int{{1}, {1}, {1}},
	}
	ok, stats, err := IsSolvable(p, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || stats.Outcome != "controversial" {
		t.Fatalf("expected controversial, got ok=%v stats=%+v", ok, stats)
	}
}
