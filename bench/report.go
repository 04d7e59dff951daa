package bench

import (
	"bufio"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// report is one output file, holding a value for each Result.
type report struct {
	name  string
	value func(Result) int64
}

var reports = []report{
	{"output_time_generic.txt", func(r Result) int64 { return r.Generic.Elapsed.Milliseconds() }},
	{"output_time_lift_to_front.txt", func(r Result) int64 { return r.LiftToFront.Elapsed.Milliseconds() }},
	{"output_time_difference.txt", func(r Result) int64 {
		return r.Generic.Elapsed.Milliseconds() - r.LiftToFront.Elapsed.Milliseconds()
	}},
	{"output_memory_generic.txt", func(r Result) int64 { return r.Generic.Memory }},
	{"output_memory_lift_to_front.txt", func(r Result) int64 { return r.LiftToFront.Memory }},
	{"output_memory_difference.txt", func(r Result) int64 { return r.LiftToFront.Memory - r.Generic.Memory }},
}

// ReportNames lists the files written by WriteReports.
func ReportNames() []string {
	var result []string
	for _, r := range reports {
		result = append(result, r.name)
	}
	return result
}

// WriteReports writes one "<vertices>, <value>" line per Result to each report file in dir. Times
// are in milliseconds and memory in bytes.
func WriteReports(fs afero.Fs, dir string, results []Result) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	for _, r := range reports {
		if err := writeReport(fs, filepath.Join(dir, r.name), results, r.value); err != nil {
			return err
		}
	}
	return nil
}

func writeReport(fs afero.Fs, path string, results []Result, value func(Result) int64) error {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	bw := bufio.NewWriter(f)
	for _, r := range results {
		bw.WriteString(strconv.Itoa(r.Vertices))
		bw.WriteString(", ")
		bw.WriteString(strconv.FormatInt(value(r), 10))
		bw.WriteString("\n")
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
