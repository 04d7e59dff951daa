package goldberg

import (
	"fmt"
	"io"
	"strconv"

	"github.com/kalexmills/goldberg/graph"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
)

// TraceObserver logs every step of a computation at debug level and, after pre-processing and each
// push or relabel, renders the vertex state and the incidence, flow and capacity matrices to a
// writer. It's a diagnostic aid; its output format is not stable.
type TraceObserver struct {
	out io.Writer
}

// NewTraceObserver returns a TraceObserver which renders matrices to w.
func NewTraceObserver(w io.Writer) *TraceObserver {
	return &TraceObserver{out: w}
}

// Observe implements Observer.
func (o *TraceObserver) Observe(ev Event, g *graph.Graph) {
	var entry = log.WithFields(log.Fields{
		"event": ev.Kind.String(),
		"cycle": ev.Cycle,
	})
	switch ev.Kind {
	case Preprocessed:
		entry.Debug("initial preflow established")
	case Selected:
		entry.WithField("vertex", ev.Vertex).Debug("current active vertex")
	case Pushed:
		entry.WithFields(log.Fields{
			"from":   ev.Vertex,
			"to":     ev.Target,
			"amount": ev.Amount,
		}).Debug("flow moved")
	case Relabeled:
		entry.WithFields(log.Fields{
			"vertex": ev.Vertex,
			"label":  ev.Label,
		}).Debug("no admissible arc found; vertex relabeled")
	case Finished:
		entry.WithField("flow", ev.Amount).Debug("no active vertex remains")
		return
	}
	if ev.Kind != Selected {
		o.writeStatus(ev, g)
	}
}

func (o *TraceObserver) writeStatus(ev Event, g *graph.Graph) {
	fmt.Fprintf(o.out, "[%s] cycle %d\n", ev.Kind, ev.Cycle)

	var vertices = tablewriter.NewWriter(o.out)
	vertices.SetHeader([]string{"vertex", "label", "excess"})
	for u := 0; u < g.Len(); u++ {
		var v = g.Vertex(u)
		vertices.Append([]string{strconv.Itoa(u), strconv.Itoa(v.Label), strconv.FormatInt(v.Excess, 10)})
	}
	vertices.Render()

	o.writeMatrix("incidence", g, func(e *graph.Edge) string {
		if e == nil {
			return "0"
		}
		return "1"
	})
	o.writeMatrix("flow", g, func(e *graph.Edge) string {
		if e == nil {
			return "0"
		}
		return strconv.FormatInt(e.Flow, 10)
	})
	o.writeMatrix("capacity", g, func(e *graph.Edge) string {
		if e == nil {
			return "0"
		}
		return strconv.FormatInt(e.Capacity, 10)
	})

	if ev.Order != nil {
		fmt.Fprintf(o.out, "L = %v\n", ev.Order)
	}
}

func (o *TraceObserver) writeMatrix(name string, g *graph.Graph, cell func(*graph.Edge) string) {
	fmt.Fprintf(o.out, "%s matrix\n", name)

	var table = tablewriter.NewWriter(o.out)
	var headers = []string{""}
	for v := 0; v < g.Len(); v++ {
		headers = append(headers, strconv.Itoa(v))
	}
	table.SetAutoFormatHeaders(false)
	table.SetHeader(headers)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for u := 0; u < g.Len(); u++ {
		var row = []string{strconv.Itoa(u)}
		for v := 0; v < g.Len(); v++ {
			row = append(row, cell(g.Edge(u, v)))
		}
		table.Append(row)
	}
	table.Render()
}
