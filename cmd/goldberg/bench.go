package main

import (
	"time"

	"github.com/kalexmills/goldberg/bench"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type cmdTest struct {
	Output      string `short:"o" long:"output" required:"true" description:"Folder receiving the report files"`
	Verbose     bool   `short:"v" long:"verbose" description:"Log each measurement"`
	Seed        int64  `long:"seed" default:"0" description:"Seed of the random graph generator (0 picks one from the clock)"`
	MaxCapacity int64  `long:"max-capacity" default:"50" description:"Largest capacity of a random edge"`
	KeepGraphs  bool   `long:"keep-graphs" description:"Also write each generated edge list to the output folder"`

	Range struct {
		Min int `positional-arg-name:"min" description:"Smallest vertex count"`
		Max int `positional-arg-name:"max" description:"Largest vertex count"`
	} `positional-args:"yes" required:"yes"`

	fs afero.Fs
}

func (cmd *cmdTest) Execute([]string) error {
	startup()
	return inputError(cmd.run())
}

func (cmd *cmdTest) run() error {
	if cmd.fs == nil {
		cmd.fs = afero.NewOsFs()
	}
	if cmd.Verbose && !log.IsLevelEnabled(log.InfoLevel) {
		log.SetLevel(log.InfoLevel)
	}
	if cmd.Seed == 0 {
		cmd.Seed = time.Now().UnixNano()
		log.WithField("seed", cmd.Seed).Info("seeded random graph generator")
	}

	results, err := bench.Run(bench.Config{
		Min:         cmd.Range.Min,
		Max:         cmd.Range.Max,
		MaxCapacity: cmd.MaxCapacity,
		Seed:        cmd.Seed,
		Fs:          cmd.fs,
		Dir:         cmd.Output,
		KeepGraphs:  cmd.KeepGraphs,
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"measurements": len(results),
		"output":       cmd.Output,
		"reports":      bench.ReportNames(),
	}).Info("wrote benchmark reports")
	return nil
}
