package nonogram

import "testing"

func TestCellValueInvert(t *testing.T) {
	if Filled.Invert() != Empty {
		t.Fatalf("Invert(Filled) should be Empty")
	}
	if Empty.Invert() != Filled {
		t.Fatalf("Invert(Empty) should be Filled")
	}
}

func TestCellValueInvertUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Invert(Unknown) to panic")
		}
	}()
	Unknown.Invert()
}

func TestFieldMirrorsStayInSync(t *testing.T) {
	f := NewField(3, 4)
	f.Set(Coords{Row: 1, Col: 2}, Filled)

	if got := f.Get(Coords{Row: 1, Col: 2}); got != Filled {
		t.Fatalf("Get = %v, want Filled", got)
	}
	for c := 0; c < 4; c++ {
		for r := 0; r < 3; r++ {
			if f.Row(r)[c] != f.Col(c)[r] {
				t.Fatalf("row/col mirrors disagree at (%d,%d)", r, c)
			}
		}
	}
}

func TestFieldIsSolved(t *testing.T) {
	f := NewField(1, 2)
	if f.IsSolved() {
		t.Fatalf("fresh field should not be solved")
	}
	f.Set(Coords{0, 0}, Filled)
	f.Set(Coords{0, 1}, Empty)
	if !f.IsSolved() {
		t.Fatalf("field with every cell known should be solved")
	}
}

func TestFieldCloneIsIndependent(t *testing.T) {
	f := NewField(1, 1)
	clone := f.Clone()
	clone.Set(Coords{0, 0}, Filled)
	if f.Get(Coords{0, 0}) != Unknown {
		t.Fatalf("mutating a clone must not affect the original")
	}
}

func TestAssumptionApplyUnapplyInvert(t *testing.T) {
	f := NewField(1, 1)
	a := Assumption{Coords: Coords{0, 0}, Val: Filled}
	a.Apply(f)
	if f.Get(Coords{0, 0}) != Filled {
		t.Fatalf("Apply should set the cell")
	}
	a.Unapply(f)
	if f.Get(Coords{0, 0}) != Unknown {
		t.Fatalf("Unapply should reset the cell to Unknown")
	}
	if a.Invert().Val != Empty {
		t.Fatalf("Invert should flip the value")
	}
	if a.Invert().Coords != a.Coords {
		t.Fatalf("Invert must keep coordinates")
	}
}

func TestLineHintsFits(t *testing.T) {
	fits := LineHints{3, 1}
	if !fits.Fits(5) {
		t.Fatalf("[3,1] should fit in 5 (3+1+1 gap = 5)")
	}
	tooBig := LineHints{2, 3}
	if tooBig.Fits(5) {
		t.Fatalf("[2,3] should not fit in 5 (2+3+1 gap = 6)")
	}
	empty := LineHints{}
	if !empty.Fits(0) {
		t.Fatalf("empty hints should fit any length including 0")
	}
}
