package goldberg

import "github.com/kalexmills/goldberg/graph"

// EventKind identifies the step of the algorithm an Event reports on.
type EventKind int

const (
	// Preprocessed is emitted once the initial preflow has been established.
	Preprocessed EventKind = iota
	// Selected is emitted when an active vertex has been chosen.
	Selected
	// Pushed is emitted after flow has moved from Vertex to Target.
	Pushed
	// Relabeled is emitted after the label of Vertex has been raised.
	Relabeled
	// Finished is emitted once no vertex remains active.
	Finished
)

func (k EventKind) String() string {
	switch k {
	case Preprocessed:
		return "preprocessed"
	case Selected:
		return "selected"
	case Pushed:
		return "pushed"
	case Relabeled:
		return "relabeled"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event describes one step of a max-flow computation.
type Event struct {
	Kind EventKind
	// Vertex is the vertex the step operated on.
	Vertex int
	// Target is the receiving vertex of a push.
	Target int
	// Amount is the flow moved by a push, or the max flow once Finished.
	Amount int64
	// Label is the new label of a relabeled vertex.
	Label int
	// Cycle counts the select/push/relabel rounds completed so far.
	Cycle int
	// Order is a snapshot of the lift-to-front list; nil for strategies without one.
	Order []int
}

// Observer is notified as a Solver makes progress. Observers must not mutate the graph.
type Observer interface {
	Observe(ev Event, g *graph.Graph)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev Event, g *graph.Graph)

// Observe calls f.
func (f ObserverFunc) Observe(ev Event, g *graph.Graph) {
	f(ev, g)
}
