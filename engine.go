package goldberg

import (
	"fmt"

	"github.com/kalexmills/goldberg/graph"
)

// Stats counts the work performed by a max-flow computation.
type Stats struct {
	Pushes   int
	Relabels int
	Cycles   int
}

type orderer interface {
	Order() []int
}

// engine runs push-relabel over a graph, with the choice of active vertex delegated to a Strategy.
type engine struct {
	g        *graph.Graph
	strategy Strategy
	observer Observer
	s, t     int
	stats    Stats
}

// run computes the max flow from s to t, returning the excess accumulated at t.
func (e *engine) run() int64 {
	e.preprocess()
	e.strategy.Prepare(e.g, e.s, e.t)
	e.notify(Event{Kind: Preprocessed})

	for {
		u, ok := e.strategy.Next(e.g, e.s, e.t)
		if !ok {
			break
		}
		e.notify(Event{Kind: Selected, Vertex: u, Cycle: e.stats.Cycles})
		if !e.push(u) {
			if !e.relabel(u) {
				panic(fmt.Sprintf("goldberg: active vertex %d with excess %d has no residual edge", u, e.g.Vertex(u).Excess))
			}
			if label := e.g.Vertex(u).Label; label > 2*e.g.Len()-1 {
				panic(fmt.Sprintf("goldberg: label %d of vertex %d exceeds bound %d", label, u, 2*e.g.Len()-1))
			}
			e.strategy.Relabeled(u)
			e.notify(Event{Kind: Relabeled, Vertex: u, Label: e.g.Vertex(u).Label, Cycle: e.stats.Cycles})
		}
		e.stats.Cycles++
	}
	flow := e.g.Vertex(e.t).Excess
	e.notify(Event{Kind: Finished, Vertex: e.t, Amount: flow, Cycle: e.stats.Cycles})
	return flow
}

// preprocess lifts the source to height |V| and saturates every edge leaving it.
func (e *engine) preprocess() {
	e.g.Vertex(e.s).Label = e.g.Len()
	for i := 0; i < e.g.Len(); i++ {
		edge := e.g.Edge(e.s, i)
		if edge == nil {
			continue
		}
		edge.Flow = edge.Capacity
		e.g.Vertex(i).Excess += edge.Capacity
		e.g.Edge(i, e.s).Flow = -edge.Flow
	}
}

// push moves excess from u across the first unsaturated edge leading to a lower vertex. It returns
// false without side effects if no such edge exists.
func (e *engine) push(u int) bool {
	from := e.g.Vertex(u)
	for i := 0; i < e.g.Len(); i++ {
		edge := e.g.Edge(u, i)
		if edge == nil || edge.Saturated() || from.Label <= e.g.Vertex(i).Label {
			continue
		}
		delta := min64(edge.Residual(), from.Excess)
		from.Excess -= delta
		e.g.Vertex(i).Excess += delta
		edge.Flow += delta
		e.g.Edge(i, u).Flow -= delta

		e.stats.Pushes++
		e.notify(Event{Kind: Pushed, Vertex: u, Target: i, Amount: delta, Cycle: e.stats.Cycles})
		return true
	}
	return false
}

// relabel raises the label of u to one more than its lowest residual neighbor. It returns false if
// u has no residual edge.
func (e *engine) relabel(u int) bool {
	minHeight := -1
	for i := 0; i < e.g.Len(); i++ {
		edge := e.g.Edge(u, i)
		if edge == nil || edge.Saturated() {
			continue
		}
		if label := e.g.Vertex(i).Label; minHeight == -1 || label < minHeight {
			minHeight = label
		}
	}
	if minHeight == -1 {
		return false
	}
	e.g.Vertex(u).Label = minHeight + 1
	e.stats.Relabels++
	return true
}

func (e *engine) notify(ev Event) {
	if e.observer == nil {
		return
	}
	if o, ok := e.strategy.(orderer); ok {
		ev.Order = o.Order()
	}
	e.observer.Observe(ev, e.g)
}

func min64(x, y int64) int64 {
	if x < y {
		return x
	}
	return y
}
