// util_test.go defines utility functions used during testing.

package goldberg_test

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/kalexmills/goldberg/edgelist"
	"github.com/pkg/errors"
)

const FlowInstances = ".flow"

func visitAllInstances(t *testing.T, suffix string, visit func(*testing.T, string, TestInstance)) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*"+suffix))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatalf("no %s instances found in testdata", suffix)
	}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("could not open instance %s: %v", path, err)
		}
		instance, err := loadInstance(f)
		f.Close()
		if err != nil {
			t.Fatalf("could not load instance %s: %v", path, err)
		}
		name := strings.TrimPrefix(path, "testdata"+string(filepath.Separator))
		t.Run(name, func(t *testing.T) {
			visit(t, name, instance)
		})
	}
}

// loadInstance loads a test instance flow network. Each test is a UTF-8 encoded file. The first line
// of the file contains a single integer describing the expected max flow which is attainable for the
// test instance, or -1 if it is unknown. All remaining lines of the file are either empty or consist
// of 3 integers describing one directed edge of the flow network: the source and destination nodes of
// the edge, and its capacity. The max flow is computed from node 0 to the highest-numbered node.
func loadInstance(reader io.Reader) (TestInstance, error) {
	br := bufio.NewReader(reader)
	first, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return TestInstance{}, err
	}
	expectedFlow, err := strconv.ParseInt(strings.TrimSpace(first), 10, 64)
	if err != nil {
		return TestInstance{}, errors.Wrap(err, "first line of file must consist of a single integer")
	}
	lines, err := edgelist.Read(br)
	if err != nil {
		return TestInstance{}, err
	}
	return TestInstance{
		numNodes:     edgelist.VertexCount(lines),
		expectedFlow: expectedFlow,
		lines:        lines,
	}, nil
}

type TestInstance struct {
	numNodes     int
	expectedFlow int64
	lines        []edgelist.Line
}
