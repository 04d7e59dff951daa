package main

import (
	"github.com/jessevdk/go-flags"
	mbp "go.gazette.dev/core/mainboilerplate"
)

const iniFilename = "goldberg.ini"

// baseCfg is the configuration shared by every sub-command.
var baseCfg = new(struct {
	Log mbp.LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
})

func main() {
	var parser = flags.NewParser(baseCfg, flags.Default)

	mbp.AddPrintConfigCmd(parser, iniFilename)
	parser.LongDescription = `goldberg computes maximum flows with the push-relabel method.

	See --help pages of each sub-command for documentation and usage examples.
	Optionally configure goldberg with a '` + iniFilename + `' file in the current working directory,
	or with '~/.config/gazette/` + iniFilename + `'. Use the 'print-config' sub-command to inspect
	the tool's current configuration.
	`

	_ = mustAddCmd(parser.Command, "solve", "Compute the max flow of an edge list", `
Compute the maximum flow from a source to a sink vertex of a graph read from an
edge list file. Each line of the file holds one directed edge as three integers
"u v capacity". Vertex IDs are 0-based.

Choose the active-vertex strategy with --mode: 0 scans vertices by index, and
1 uses the lift-to-front list.

Compute the max flow from vertex 0 to vertex 5 of graph.txt:
>    goldberg solve -i graph.txt -s 0 -t 5 -m 1
`, &cmdSolve{})

	_ = mustAddCmd(parser.Command, "test", "Benchmark both strategies on random graphs", `
Generate a random dense graph for every vertex count from <min> to <max>, solve
each with both strategies, and write time and memory report files to the
--output folder. Each report line holds "<vertices>, <value>".
`, &cmdTest{})

	mbp.MustParseConfig(parser, iniFilename)
}

func mustAddCmd(cmd *flags.Command, name, short, long string, cfg interface{}) *flags.Command {
	cmd, err := cmd.AddCommand(name, short, long, cfg)
	mbp.Must(err, "failed to add command")
	return cmd
}

// inputError converts a failed command into a *flags.Error, which mbp.MustParseArgs reports by
// exiting with status 1 rather than panicking.
func inputError(err error) error {
	if err == nil {
		return nil
	}
	return &flags.Error{Type: flags.ErrUnknown, Message: err.Error()}
}

func startup() {
	mbp.InitLog(baseCfg.Log)
}
