package nonogram

import "sort"

// ReachabilityGraph is a transitively-closed directed graph over
// Assumptions. For each interned node it keeps two closed sets: In(a) is
// every node from which a is reachable, Out(a) is every node reachable from
// a; both always contain a itself. The graph is scoped to a single 2-SAT
// search step and rebuilt from scratch on each one.
type ReachabilityGraph struct {
	index map[Assumption]int
	nodes []Assumption
	in    []map[int]struct{}
	out   []map[int]struct{}
}

// NewReachabilityGraph returns an empty graph.
func NewReachabilityGraph() *ReachabilityGraph {
	return &ReachabilityGraph{index: make(map[Assumption]int)}
}

func (g *ReachabilityGraph) intern(a Assumption) int {
	if id, ok := g.index[a]; ok {
		return id
	}
	id := len(g.nodes)
	g.index[a] = id
	g.nodes = append(g.nodes, a)
	g.in = append(g.in, map[int]struct{}{id: {}})
	g.out = append(g.out, map[int]struct{}{id: {}})
	return id
}

// SetReachable adds the edge a→b and maintains the transitive closure: every
// predecessor of a (including a) becomes able to reach every successor of b
// (including b).
func (g *ReachabilityGraph) SetReachable(a, b Assumption) {
	ai := g.intern(a)
	bi := g.intern(b)

	preds := make([]int, 0, len(g.in[ai]))
	for id := range g.in[ai] {
		preds = append(preds, id)
	}
	succs := make([]int, 0, len(g.out[bi]))
	for id := range g.out[bi] {
		succs = append(succs, id)
	}

	for _, src := range preds {
		for _, dst := range succs {
			g.out[src][dst] = struct{}{}
			g.in[dst][src] = struct{}{}
		}
	}
}

// IsReachable reports whether b is reachable from a.
func (g *ReachabilityGraph) IsReachable(a, b Assumption) bool {
	ai, ok := g.index[a]
	if !ok {
		return false
	}
	bi, ok := g.index[b]
	if !ok {
		return false
	}
	_, reachable := g.out[ai][bi]
	return reachable
}

// GetReachable returns every node reachable from a, a itself included.
func (g *ReachabilityGraph) GetReachable(a Assumption) []Assumption {
	id, ok := g.index[a]
	if !ok {
		return nil
	}
	result := make([]Assumption, 0, len(g.out[id]))
	for other := range g.out[id] {
		result = append(result, g.nodes[other])
	}
	return result
}

// StronglyConnectedComponents groups interned nodes that mutually reach one
// another. Because Out already holds the full transitive closure, two nodes
// share a component iff each appears in the other's Out set.
func (g *ReachabilityGraph) StronglyConnectedComponents() [][]Assumption {
	visited := make([]bool, len(g.nodes))
	var comps [][]Assumption
	for i := range g.nodes {
		if visited[i] {
			continue
		}
		var comp []Assumption
		for j := range g.nodes {
			if visited[j] {
				continue
			}
			_, aToB := g.out[i][j]
			_, bToA := g.out[j][i]
			if aToB && bToA {
				comp = append(comp, g.nodes[j])
				visited[j] = true
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// ImpossibleLiterals returns every interned assumption that transitively
// implies its own negation: for each strongly connected component, a
// representative's reachable set is checked for two literals sharing
// coordinates (necessarily one Filled, one Empty, since only two values
// exist) — a collision marks every member of that component impossible.
func (g *ReachabilityGraph) ImpossibleLiterals() []Assumption {
	var impossible []Assumption
	for _, comp := range g.StronglyConnectedComponents() {
		if len(comp) == 0 {
			continue
		}
		reachable := g.GetReachable(comp[0])
		sort.Slice(reachable, func(i, j int) bool {
			return reachable[i].Coords.Less(reachable[j].Coords)
		})
		for i := 1; i < len(reachable); i++ {
			if reachable[i].Coords == reachable[i-1].Coords {
				impossible = append(impossible, comp...)
				break
			}
		}
	}
	return impossible
}
