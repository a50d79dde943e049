package nonogram

import "testing"

func TestReachabilityGraphTransitiveClosure(t *testing.T) {
	g := NewReachabilityGraph()
	a := Assumption{Coords: Coords{0, 0}, Val: Filled}
	b := Assumption{Coords: Coords{0, 1}, Val: Filled}
	c := Assumption{Coords: Coords{0, 2}, Val: Filled}

	g.SetReachable(a, b)
	g.SetReachable(b, c)

	if !g.IsReachable(a, b) {
		t.Fatalf("a should reach b directly")
	}
	if !g.IsReachable(b, c) {
		t.Fatalf("b should reach c directly")
	}
	if !g.IsReachable(a, c) {
		t.Fatalf("a should reach c transitively")
	}
	if g.IsReachable(c, a) {
		t.Fatalf("c should not reach a")
	}
}

func TestReachabilityGraphSelfReachable(t *testing.T) {
	g := NewReachabilityGraph()
	a := Assumption{Coords: Coords{1, 1}, Val: Empty}
	b := Assumption{Coords: Coords{1, 2}, Val: Empty}
	g.SetReachable(a, b)
	if !g.IsReachable(a, a) {
		t.Fatalf("every node must reach itself")
	}
}

func TestReachabilityGraphImpossibleLiterals(t *testing.T) {
	g := NewReachabilityGraph()
	a := Assumption{Coords: Coords{0, 0}, Val: Filled}
	notA := a.Invert()

	// a => notA and notA => a means a is in a cycle with its own negation:
	// both a and notA share coords, so a's reachable set (a, notA) has a
	// collision and a is impossible.
	g.SetReachable(a, notA)
	g.SetReachable(notA, a)

	impossible := g.ImpossibleLiterals()
	if len(impossible) == 0 {
		t.Fatalf("expected at least one impossible literal")
	}
	found := false
	for _, lit := range impossible {
		if lit == a || lit == notA {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a or its negation among impossible literals, got %v", impossible)
	}
}

func TestReachabilityGraphGetReachableUninternedIsEmpty(t *testing.T) {
	g := NewReachabilityGraph()
	a := Assumption{Coords: Coords{5, 5}, Val: Filled}
	if got := g.GetReachable(a); got != nil {
		t.Fatalf("expected nil for an uninterned node, got %v", got)
	}
}
