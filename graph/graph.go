// Package graph holds the dense vertex and edge state operated on by the push-relabel solver.
package graph

import (
	"math"

	"github.com/pkg/errors"
)

// MaxVertices is the largest vertex count of a graph. The edge table holds MaxVertices^2 entries.
const MaxVertices = 1 << 16

// ErrInvalidSize is returned when a graph is constructed with fewer than two vertices, or more than
// MaxVertices.
var ErrInvalidSize = errors.New("invalid graph size")

// ErrInvalidEdge is returned when an edge is a self-loop, references an unknown vertex, or has a
// negative capacity.
var ErrInvalidEdge = errors.New("invalid edge")

// Vertex is the per-node state of a preflow.
type Vertex struct {
	// Label is the height of the vertex. Flow is only pushed downhill.
	Label int
	// Excess is the inflow which has not yet been routed onward.
	Excess int64
}

// Edge holds the flow and capacity of one direction of a connection between two vertices.
type Edge struct {
	Flow     int64
	Capacity int64
}

// Residual returns the capacity which remains available on the edge.
func (e *Edge) Residual() int64 {
	return e.Capacity - e.Flow
}

// Saturated is true iff the flow along the edge has reached its capacity.
func (e *Edge) Saturated() bool {
	return e.Flow >= e.Capacity
}

// Graph is a fixed-size set of vertices together with a dense table of edges. A nil entry in the
// table means no edge exists between two vertices in either direction.
type Graph struct {
	numNodes  int
	vertices  []Vertex
	edges     []*Edge // row-major, edges[u*numNodes+v] is the edge u -> v
	edgeCount int
}

// New constructs a graph with the provided number of vertices and no edges.
func New(numNodes int) (*Graph, error) {
	if numNodes < 2 {
		return nil, errors.WithMessagef(ErrInvalidSize, "a flow network needs a source and a sink; got %d vertices", numNodes)
	}
	if numNodes > MaxVertices || numNodes > math.MaxInt/numNodes {
		return nil, errors.WithMessagef(ErrInvalidSize, "%d vertices exceeds the limit of %d", numNodes, MaxVertices)
	}
	return &Graph{
		numNodes: numNodes,
		vertices: make([]Vertex, numNodes),
		edges:    make([]*Edge, numNodes*numNodes),
	}, nil
}

// Len returns the number of vertices in the graph.
func (g *Graph) Len() int {
	return g.numNodes
}

// EdgeCount returns the number of edge records stored in the graph, counting both directions.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// AddEdge sets the capacity of the edge from u to v and resets its flow. The reverse edge from v to
// u is (re)created with zero flow and zero capacity. Adding the same edge twice overwrites the
// first call.
func (g *Graph) AddEdge(u, v int, capacity int64) error {
	if !g.valid(u) {
		return errors.WithMessagef(ErrInvalidEdge, "no vertex with ID %d is known", u)
	}
	if !g.valid(v) {
		return errors.WithMessagef(ErrInvalidEdge, "no vertex with ID %d is known", v)
	}
	if u == v {
		return errors.WithMessagef(ErrInvalidEdge, "self-loop at vertex %d", u)
	}
	if capacity < 0 {
		return errors.WithMessagef(ErrInvalidEdge, "negative capacity %d on edge from %d to %d", capacity, u, v)
	}
	g.set(u, v, Edge{Flow: 0, Capacity: capacity})
	g.set(v, u, Edge{Flow: 0, Capacity: 0})
	return nil
}

func (g *Graph) set(u, v int, e Edge) {
	idx := u*g.numNodes + v
	if g.edges[idx] == nil {
		g.edgeCount++
	}
	g.edges[idx] = &e
}

// Edge returns the edge from u to v, or nil if no such edge exists.
func (g *Graph) Edge(u, v int) *Edge {
	return g.edges[u*g.numNodes+v]
}

// Vertex returns the state of vertex u.
func (g *Graph) Vertex(u int) *Vertex {
	return &g.vertices[u]
}

// Flow returns the flow along an edge; zero if the edge is absent or either vertex is unknown.
func (g *Graph) Flow(u, v int) int64 {
	if e := g.lookup(u, v); e != nil {
		return e.Flow
	}
	return 0
}

// Capacity returns the capacity of an edge; zero if the edge is absent.
func (g *Graph) Capacity(u, v int) int64 {
	if e := g.lookup(u, v); e != nil {
		return e.Capacity
	}
	return 0
}

// Residual returns the residual capacity along an edge; zero if the edge is absent.
func (g *Graph) Residual(u, v int) int64 {
	if e := g.lookup(u, v); e != nil {
		return e.Residual()
	}
	return 0
}

// lookup is Edge with bounds checking, for callers outside the hot loop.
func (g *Graph) lookup(u, v int) *Edge {
	if !g.valid(u) || !g.valid(v) {
		return nil
	}
	return g.Edge(u, v)
}

func (g *Graph) valid(u int) bool {
	return 0 <= u && u < g.numNodes
}
