// Package goldberg computes maximum flows using Goldberg's push-relabel method.
//
// A Solver owns a fixed-size graph. Edges are added with AddEdge, after which MaxFlow runs the
// algorithm once. The order in which active vertices are examined is chosen by a Strategy: the
// Generic strategy scans vertices by index, while LiftToFront maintains a list in which each
// relabeled vertex is moved to the front.
//
// Solvers are not safe for concurrent use.
package goldberg

import (
	"io"
	"math"

	"github.com/kalexmills/goldberg/graph"
	"github.com/pkg/errors"
)

// ErrInvalidSize is returned when a Solver is constructed with fewer than two vertices, or more than
// graph.MaxVertices.
var ErrInvalidSize = graph.ErrInvalidSize

// ErrInvalidEdge is returned when an edge is a self-loop, references an unknown vertex, or has a
// negative capacity.
var ErrInvalidEdge = graph.ErrInvalidEdge

// ErrInvalidQuery is returned when the source or sink is out of range, or they are equal.
var ErrInvalidQuery = errors.New("invalid max-flow query")

// ErrOverflow is returned when the capacities leaving the source sum past the range of int64. Every
// excess is bounded by that sum, so smaller inputs cannot overflow.
var ErrOverflow = errors.New("source capacity overflows int64")

// ErrSolved is returned when a Solver is modified or solved after MaxFlow has already run.
var ErrSolved = errors.New("max flow already computed")

// Solver binds a Strategy to a graph.
type Solver struct {
	graph    *graph.Graph
	mode     Mode
	strategy Strategy
	observer Observer
	solved   bool
	stats    Stats
}

// Option configures a Solver.
type Option func(*Solver)

// WithObserver attaches an Observer which is notified of every step of MaxFlow.
func WithObserver(o Observer) Option {
	return func(s *Solver) {
		s.observer = o
	}
}

// WithTrace enables verbose mode: every step is traced to w by a TraceObserver.
func WithTrace(w io.Writer) Option {
	return WithObserver(NewTraceObserver(w))
}

// WithStrategy replaces the Strategy selected by the Solver's Mode.
func WithStrategy(strategy Strategy) Option {
	return func(s *Solver) {
		s.strategy = strategy
	}
}

// NewSolver constructs a Solver over numNodes vertices, with IDs 0, 1, ..., numNodes-1.
func NewSolver(numNodes int, mode Mode, opts ...Option) (*Solver, error) {
	g, err := graph.New(numNodes)
	if err != nil {
		return nil, err
	}
	result := &Solver{graph: g, mode: mode}
	for _, opt := range opts {
		opt(result)
	}
	if result.strategy == nil {
		if result.strategy, err = mode.NewStrategy(); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// AddEdge sets the capacity of the edge from u to v. Adding the same edge twice overwrites the
// first call. Edges cannot be added once MaxFlow has run. The capacities leaving the source of a
// later MaxFlow call must sum to at most math.MaxInt64.
func (s *Solver) AddEdge(u, v int, capacity int64) error {
	if s.solved {
		return ErrSolved
	}
	return s.graph.AddEdge(u, v, capacity)
}

// MaxFlow returns the value of a maximum flow from source to sink. It can only be called once, as
// the flow is computed in place.
func (s *Solver) MaxFlow(source, sink int) (int64, error) {
	if s.solved {
		return 0, ErrSolved
	}
	n := s.graph.Len()
	if source < 0 || source >= n {
		return 0, errors.WithMessagef(ErrInvalidQuery, "source %d is not a vertex", source)
	}
	if sink < 0 || sink >= n {
		return 0, errors.WithMessagef(ErrInvalidQuery, "sink %d is not a vertex", sink)
	}
	if source == sink {
		return 0, errors.WithMessagef(ErrInvalidQuery, "source and sink are both %d", source)
	}
	var total int64
	for v := 0; v < n; v++ {
		c := s.graph.Capacity(source, v)
		if total > math.MaxInt64-c {
			return 0, errors.WithMessagef(ErrOverflow, "edges leaving source %d", source)
		}
		total += c
	}
	s.solved = true

	e := engine{
		g:        s.graph,
		strategy: s.strategy,
		observer: s.observer,
		s:        source,
		t:        sink,
	}
	flow := e.run()
	s.stats = e.stats
	return flow, nil
}

// Graph returns the graph owned by the Solver. After MaxFlow, it holds the computed flow.
func (s *Solver) Graph() *graph.Graph {
	return s.graph
}

// Mode returns the mode the Solver was constructed with.
func (s *Solver) Mode() Mode {
	return s.mode
}

// Stats returns the work performed by MaxFlow.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Flow returns the flow along an edge. The result is only meaningful after MaxFlow has run.
func (s *Solver) Flow(u, v int) int64 {
	return s.graph.Flow(u, v)
}

// Capacity returns the capacity of an edge.
func (s *Solver) Capacity(u, v int) int64 {
	return s.graph.Capacity(u, v)
}
