// Package edgelist reads flow networks described as whitespace-separated "u v capacity" triples.
// Vertex IDs are 0-based, and the number of vertices is one more than the largest ID mentioned.
package edgelist

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Line is one directed edge of an edge list.
type Line struct {
	U, V     int
	Capacity int64
}

// EdgeAdder is implemented by types which edges can be added to, such as *goldberg.Solver.
type EdgeAdder interface {
	AddEdge(u, v int, capacity int64) error
}

// Read parses every triple from r. Line breaks are not significant; any whitespace separates
// fields. A token which is not an integer, or a trailing incomplete triple, is an error.
func Read(r io.Reader) ([]Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var result []Line
	var fields [3]int64
	n := 0
	for scanner.Scan() {
		x, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "edge %d: field %d", len(result), n+1)
		}
		fields[n] = x
		if n++; n < 3 {
			continue
		}
		if fields[0] < 0 || fields[1] < 0 {
			return nil, errors.Errorf("edge %d: negative vertex ID in %d %d", len(result), fields[0], fields[1])
		}
		result = append(result, Line{U: int(fields[0]), V: int(fields[1]), Capacity: fields[2]})
		n = 0
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading edge list")
	}
	if n != 0 {
		return nil, errors.Errorf("edge %d: expected 3 fields but found %d", len(result), n)
	}
	return result, nil
}

// ReadFile reads the edge list stored at path.
func ReadFile(fs afero.Fs, path string) ([]Line, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	lines, err := Read(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "parsing %s", path)
	}
	return lines, nil
}

// VertexCount returns one more than the largest vertex ID in lines; zero if lines is empty.
func VertexCount(lines []Line) int {
	maxNodeID := -1
	for _, l := range lines {
		maxNodeID = max(maxNodeID, l.U, l.V)
	}
	return maxNodeID + 1
}

// Populate adds every line to g, in order.
func Populate(g EdgeAdder, lines []Line) error {
	for idx, l := range lines {
		if err := g.AddEdge(l.U, l.V, l.Capacity); err != nil {
			return errors.WithMessagef(err, "edge %d", idx)
		}
	}
	return nil
}

// Write writes lines to w, one triple per line.
func Write(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if _, err := bw.WriteString(strconv.Itoa(l.U) + " " + strconv.Itoa(l.V) + " " + strconv.FormatInt(l.Capacity, 10) + "\n"); err != nil {
			return errors.Wrap(err, "writing edge list")
		}
	}
	return errors.Wrap(bw.Flush(), "writing edge list")
}
