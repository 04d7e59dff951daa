package goldberg

import (
	"github.com/kalexmills/goldberg/graph"
	"github.com/pkg/errors"
)

// SanityChecks contains sanity check procedures for solved graphs.
var SanityChecks SanityCheckers

// SanityCheckers holds sanity check procedures for goldberg types.
type SanityCheckers struct{}

// Solver runs the Graph sanity checks against a Solver that has previously computed the max flow
// from source to sink.
func (sc SanityCheckers) Solver(s *Solver, source, sink int) error {
	if !s.solved {
		return errors.New("max flow has not been computed")
	}
	return sc.Graph(s.Graph(), source, sink)
}

// Graph runs several sanity checks against a graph whose flow from s to t has been computed. Every
// edge must respect its capacity and mirror the flow of its reverse, inflow must equal outflow at
// every node other than s and t, labels must stay below 2|V|, and no augmenting path may remain.
func (sc SanityCheckers) Graph(g *graph.Graph, s, t int) error {
	n := g.Len()
	nodeflow := make([]int64, n) // net inflow at each node, computed from the edges
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			e := g.Edge(u, v)
			if e == nil {
				continue
			}
			rev := g.Edge(v, u)
			if rev == nil {
				return errors.Errorf("edge from %d to %d has no reverse edge", u, v)
			}
			if e.Flow != -rev.Flow {
				return errors.Errorf("flow of %d on edge from %d to %d does not mirror flow of %d on its reverse", e.Flow, u, v, rev.Flow)
			}
			if e.Flow > e.Capacity {
				return errors.Errorf("capacity of %d on edge from %d to %d exceeded by flow %d", e.Capacity, u, v, e.Flow)
			}
			if e.Capacity > 0 && e.Flow < 0 && rev.Capacity == 0 {
				return errors.Errorf("edge from %d to %d has negative flow %d", u, v, e.Flow)
			}
			if e.Flow > 0 {
				nodeflow[u] -= e.Flow
				nodeflow[v] += e.Flow
			}
		}
	}
	for u := 0; u < n; u++ {
		if u == s || u == t {
			continue
		}
		if excess := g.Vertex(u).Excess; excess != 0 {
			return errors.Errorf("node %d has excess %d remaining", u, excess)
		}
		if nodeflow[u] != 0 {
			return errors.Errorf("node %d does not have its inflow equal to its outflow", u)
		}
	}
	if nodeflow[t] != g.Vertex(t).Excess {
		return errors.Errorf("sink %d has excess %d but net inflow %d", t, g.Vertex(t).Excess, nodeflow[t])
	}
	for u := 0; u < n; u++ {
		if label := g.Vertex(u).Label; label > 2*n-1 {
			return errors.Errorf("node %d has label %d exceeding bound %d", u, label, 2*n-1)
		}
	}
	return sc.augmentingPathCheck(g, s, t)
}

// augmentingPathCheck returns an error if any augmenting path is found in the residual flow network.
func (SanityCheckers) augmentingPathCheck(g *graph.Graph, s, t int) error {
	// run a BFS from source to sink using the residual flow network, if you find a path, it's wrong.
	frontier := []int{s}
	visited := make([]bool, g.Len())
	visited[s] = true
	for len(frontier) > 0 {
		curr := frontier[0]
		frontier = frontier[1:]
		for i := 0; i < g.Len(); i++ {
			if !visited[i] && g.Residual(curr, i) > 0 {
				if i == t {
					return errors.Errorf("found an augmenting path from source to sink via edge %d; flow is not maximum", curr)
				}
				visited[i] = true
				frontier = append(frontier, i)
			}
		}
	}
	return nil
}
