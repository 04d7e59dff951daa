// Package bench compares the Generic and LiftToFront strategies over random dense graphs of
// increasing size, and writes the measurements as "<vertices>, <value>" report files.
package bench

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/dustin/go-humanize"
	"github.com/kalexmills/goldberg"
	"github.com/kalexmills/goldberg/edgelist"
	"github.com/kalexmills/goldberg/graph"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// DefaultMaxCapacity is the largest capacity drawn for a random edge.
const DefaultMaxCapacity = 50

// Config of a benchmark sweep.
type Config struct {
	// Min and Max bound the vertex counts measured, inclusive.
	Min, Max int
	// MaxCapacity is the largest capacity drawn for an edge. Zero means DefaultMaxCapacity.
	MaxCapacity int64
	// Seed of the random graph generator.
	Seed int64
	// Fs and Dir locate the report files.
	Fs  afero.Fs
	Dir string
	// KeepGraphs additionally writes each generated edge list to Dir.
	KeepGraphs bool
}

// Validate returns an error if the Config cannot be run.
func (c Config) Validate() error {
	if c.Min < 2 {
		return errors.Errorf("minimum vertex count must be at least 2 (got %d)", c.Min)
	}
	if c.Max < c.Min {
		return errors.Errorf("maximum vertex count %d is less than minimum %d", c.Max, c.Min)
	}
	if c.MaxCapacity < 0 {
		return errors.Errorf("max capacity must not be negative (got %d)", c.MaxCapacity)
	}
	if c.Fs == nil {
		return errors.New("no filesystem configured")
	}
	return nil
}

// Measurement of one strategy on one graph.
type Measurement struct {
	Elapsed time.Duration
	// Memory is an estimate of the bytes held by the graph and strategy state.
	Memory int64
	Flow   int64
	Stats  goldberg.Stats
}

// Result compares both strategies on the same graph.
type Result struct {
	Vertices    int
	Edges       int
	Generic     Measurement
	LiftToFront Measurement
}

// Run measures every vertex count from cfg.Min to cfg.Max and writes the reports to cfg.Dir.
func Run(cfg Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxCapacity == 0 {
		cfg.MaxCapacity = DefaultMaxCapacity
	}
	if err := cfg.Fs.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating %s", cfg.Dir)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var results []Result
	for n := cfg.Min; n <= cfg.Max; n++ {
		lines := RandomEdges(rng, n, cfg.MaxCapacity)
		if cfg.KeepGraphs {
			if err := writeGraph(cfg, n, lines); err != nil {
				return nil, err
			}
		}
		result, err := Compare(n, lines)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"vertices":          n,
			"edges":             result.Edges,
			"flow":              result.Generic.Flow,
			"genericTime":       result.Generic.Elapsed,
			"genericMemory":     humanize.Bytes(uint64(result.Generic.Memory)),
			"liftToFrontTime":   result.LiftToFront.Elapsed,
			"liftToFrontMemory": humanize.Bytes(uint64(result.LiftToFront.Memory)),
			"genericCycles":     result.Generic.Stats.Cycles,
			"liftToFrontCycles": result.LiftToFront.Stats.Cycles,
		}).Info("measured")
		results = append(results, result)
	}
	if err := WriteReports(cfg.Fs, cfg.Dir, results); err != nil {
		return nil, err
	}
	return results, nil
}

// RandomEdges returns an edge u -> v for every u < v whose capacity, drawn uniformly from
// [0, maxCapacity], is positive.
func RandomEdges(rng *rand.Rand, n int, maxCapacity int64) []edgelist.Line {
	var result []edgelist.Line
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if c := rng.Int63n(maxCapacity + 1); c > 0 {
				result = append(result, edgelist.Line{U: u, V: v, Capacity: c})
			}
		}
	}
	return result
}

// Compare solves the max flow from 0 to n-1 with each strategy, on independent copies of the graph.
// Differing flow values are reported as an error.
func Compare(n int, lines []edgelist.Line) (Result, error) {
	result := Result{Vertices: n, Edges: len(lines)}
	var err error
	if result.Generic, err = Measure(goldberg.Generic, n, lines); err != nil {
		return result, err
	}
	if result.LiftToFront, err = Measure(goldberg.LiftToFront, n, lines); err != nil {
		return result, err
	}
	if result.Generic.Flow != result.LiftToFront.Flow {
		return result, errors.Errorf("strategies disagree on %d vertices: generic flow %d, lift-to-front flow %d",
			n, result.Generic.Flow, result.LiftToFront.Flow)
	}
	return result, nil
}

// Measure solves the max flow from 0 to n-1 with the strategy of mode.
func Measure(mode goldberg.Mode, n int, lines []edgelist.Line) (Measurement, error) {
	solver, err := goldberg.NewSolver(n, mode)
	if err != nil {
		return Measurement{}, err
	}
	if err = edgelist.Populate(solver, lines); err != nil {
		return Measurement{}, err
	}
	start := time.Now()
	flow, err := solver.MaxFlow(0, n-1)
	elapsed := time.Since(start)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		Elapsed: elapsed,
		Memory:  EstimateMemory(solver.Graph(), mode),
		Flow:    flow,
		Stats:   solver.Stats(),
	}, nil
}

// EstimateMemory approximates the bytes held by a solver: the vertex records, the edge table, the
// edge records, and for LiftToFront the order list.
func EstimateMemory(g *graph.Graph, mode goldberg.Mode) int64 {
	n := int64(g.Len())
	var (
		vertex  = int64(unsafe.Sizeof(graph.Vertex{}))
		pointer = int64(unsafe.Sizeof(&graph.Edge{}))
		edge    = int64(unsafe.Sizeof(graph.Edge{}))
	)
	result := n*vertex + pointer + n*n*pointer + int64(g.EdgeCount())*edge
	if mode == goldberg.LiftToFront {
		result += n * int64(unsafe.Sizeof(int(0)))
	}
	return result
}

func writeGraph(cfg Config, n int, lines []edgelist.Line) error {
	path := filepath.Join(cfg.Dir, fmt.Sprintf("graph_%d.txt", n))
	f, err := cfg.Fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err = edgelist.Write(f, lines); err != nil {
		f.Close()
		return errors.WithMessagef(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
