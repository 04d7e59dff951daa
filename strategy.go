package goldberg

import (
	"github.com/kalexmills/goldberg/graph"
	"github.com/pkg/errors"
)

// ErrUnknownMode is returned when a Solver is requested for a Mode which has no Strategy.
var ErrUnknownMode = errors.New("unknown solver mode")

// Strategy decides which active vertex the solver examines next. A vertex is active iff it is
// neither the source nor the sink and has positive excess.
type Strategy interface {
	// Prepare is called once, after the initial preflow has been established.
	Prepare(g *graph.Graph, s, t int)
	// Next returns the next active vertex, or false if no vertex is active.
	Next(g *graph.Graph, s, t int) (int, bool)
	// Relabeled is called each time the label of u is successfully raised.
	Relabeled(u int)
}

// Mode selects one of the built-in strategies.
type Mode int

const (
	// Generic scans every vertex in index order for an active one.
	Generic Mode = iota
	// LiftToFront scans a list of vertices in which relabeled vertices are moved to the front.
	LiftToFront
)

func (m Mode) String() string {
	switch m {
	case Generic:
		return "generic"
	case LiftToFront:
		return "lift-to-front"
	default:
		return "unknown"
	}
}

// NewStrategy returns a fresh Strategy for the mode.
func (m Mode) NewStrategy() (Strategy, error) {
	switch m {
	case Generic:
		return &GenericStrategy{}, nil
	case LiftToFront:
		return &LiftToFrontStrategy{}, nil
	default:
		return nil, errors.WithMessagef(ErrUnknownMode, "mode %d", int(m))
	}
}

// GenericStrategy returns the lowest-indexed active vertex. It keeps no state.
type GenericStrategy struct{}

// Prepare is a no-op.
func (*GenericStrategy) Prepare(*graph.Graph, int, int) {}

// Next implements Strategy.
func (*GenericStrategy) Next(g *graph.Graph, s, t int) (int, bool) {
	for u := 0; u < g.Len(); u++ {
		if u != s && u != t && g.Vertex(u).Excess > 0 {
			return u, true
		}
	}
	return 0, false
}

// Relabeled is a no-op.
func (*GenericStrategy) Relabeled(int) {}

// LiftToFrontStrategy keeps every vertex other than the source and sink in a list. The list is
// scanned front to back for an active vertex, and each relabeled vertex is moved to its front.
type LiftToFrontStrategy struct {
	nodeOrder []int
}

// Prepare builds the list in increasing index order.
func (l *LiftToFrontStrategy) Prepare(g *graph.Graph, s, t int) {
	l.nodeOrder = make([]int, 0, g.Len())
	for u := 0; u < g.Len(); u++ {
		if u != s && u != t {
			l.nodeOrder = append(l.nodeOrder, u)
		}
	}
}

// Next implements Strategy.
func (l *LiftToFrontStrategy) Next(g *graph.Graph, _, _ int) (int, bool) {
	for _, u := range l.nodeOrder {
		if g.Vertex(u).Excess > 0 {
			return u, true
		}
	}
	return 0, false
}

// Relabeled moves u to the front of the list, preserving the relative order of the others.
func (l *LiftToFrontStrategy) Relabeled(u int) {
	if len(l.nodeOrder) == 0 || l.nodeOrder[0] == u {
		return
	}
	for p := 1; p < len(l.nodeOrder); p++ {
		if l.nodeOrder[p] == u {
			copy(l.nodeOrder[1:p+1], l.nodeOrder[:p])
			l.nodeOrder[0] = u
			return
		}
	}
}

// Order returns a copy of the current list.
func (l *LiftToFrontStrategy) Order() []int {
	return append([]int(nil), l.nodeOrder...)
}
