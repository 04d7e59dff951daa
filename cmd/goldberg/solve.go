package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/kalexmills/goldberg"
	"github.com/kalexmills/goldberg/edgelist"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

type cmdSolve struct {
	Input   string `short:"i" long:"input" required:"true" description:"Edge list file of \"u v capacity\" lines"`
	Source  int    `short:"s" long:"source" required:"true" description:"Source vertex"`
	Sink    int    `short:"t" long:"sink" required:"true" description:"Sink vertex"`
	Mode    int    `short:"m" long:"mode" default:"0" choice:"0" choice:"1" description:"Solver strategy (0: generic, 1: lift-to-front)"`
	Verbose bool   `short:"v" long:"verbose" description:"Trace vertex state and flow matrices after every step"`
	Check   bool   `long:"check" description:"Verify conservation, capacities, and maximality of the computed flow"`
	Format  string `long:"format" default:"text" choice:"text" choice:"table" choice:"yaml" description:"Output format"`

	fs  afero.Fs
	out io.Writer
}

// solveOutput is the YAML rendering of a solved graph.
type solveOutput struct {
	Source  int          `yaml:"source"`
	Sink    int          `yaml:"sink"`
	Mode    string       `yaml:"mode"`
	MaxFlow int64        `yaml:"max_flow"`
	Stats   statsOutput  `yaml:"stats"`
	Edges   []edgeOutput `yaml:"edges"`
}

type statsOutput struct {
	Pushes   int `yaml:"pushes"`
	Relabels int `yaml:"relabels"`
	Cycles   int `yaml:"cycles"`
}

type edgeOutput struct {
	From     int   `yaml:"from"`
	To       int   `yaml:"to"`
	Flow     int64 `yaml:"flow"`
	Capacity int64 `yaml:"capacity"`
}

func (cmd *cmdSolve) Execute([]string) error {
	startup()
	return inputError(cmd.run())
}

func (cmd *cmdSolve) run() error {
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}
	if cmd.out == nil {
		cmd.out = os.Stdout
	}
	if cmd.Verbose && !log.IsLevelEnabled(log.DebugLevel) {
		log.SetLevel(log.DebugLevel)
	}

	lines, err := edgelist.ReadFile(cmd.fs, cmd.Input)
	if err != nil {
		return err
	}
	var opts []goldberg.Option
	if cmd.Verbose {
		opts = append(opts, goldberg.WithTrace(cmd.out))
	}
	solver, err := goldberg.NewSolver(edgelist.VertexCount(lines), goldberg.Mode(cmd.Mode), opts...)
	if err != nil {
		return errors.WithMessagef(err, "reading %s", cmd.Input)
	}
	if err = edgelist.Populate(solver, lines); err != nil {
		return errors.WithMessagef(err, "reading %s", cmd.Input)
	}
	flow, err := solver.MaxFlow(cmd.Source, cmd.Sink)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"mode":     solver.Mode(),
		"vertices": solver.Graph().Len(),
		"edges":    len(lines),
		"flow":     flow,
		"cycles":   solver.Stats().Cycles,
	}).Info("computed max flow")

	if cmd.Check {
		if err = goldberg.SanityChecks.Solver(solver, cmd.Source, cmd.Sink); err != nil {
			return errors.WithMessage(err, "sanity check failed")
		}
	}

	switch cmd.Format {
	case "table":
		cmd.outputTable(solver, lines, flow)
	case "yaml":
		return cmd.outputYAML(solver, lines, flow)
	default:
		fmt.Fprintf(cmd.out, "The maximum flow is: %d\n", flow)
	}
	return nil
}

func (cmd *cmdSolve) outputTable(solver *goldberg.Solver, lines []edgelist.Line, flow int64) {
	var table = tablewriter.NewWriter(cmd.out)
	table.SetHeader([]string{"From", "To", "Flow", "Capacity"})
	for _, l := range lines {
		table.Append([]string{
			strconv.Itoa(l.U),
			strconv.Itoa(l.V),
			strconv.FormatInt(solver.Flow(l.U, l.V), 10),
			strconv.FormatInt(solver.Capacity(l.U, l.V), 10),
		})
	}
	table.SetFooter([]string{"", "Max flow", strconv.FormatInt(flow, 10), ""})
	table.Render()
}

func (cmd *cmdSolve) outputYAML(solver *goldberg.Solver, lines []edgelist.Line, flow int64) error {
	var stats = solver.Stats()
	var out = solveOutput{
		Source:  cmd.Source,
		Sink:    cmd.Sink,
		Mode:    solver.Mode().String(),
		MaxFlow: flow,
		Stats:   statsOutput{Pushes: stats.Pushes, Relabels: stats.Relabels, Cycles: stats.Cycles},
	}
	for _, l := range lines {
		out.Edges = append(out.Edges, edgeOutput{
			From:     l.U,
			To:       l.V,
			Flow:     solver.Flow(l.U, l.V),
			Capacity: solver.Capacity(l.U, l.V),
		})
	}
	b, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, "failed to encode flow")
	}
	_, err = cmd.out.Write(b)
	return err
}
