package bench_test

import (
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/kalexmills/goldberg"
	"github.com/kalexmills/goldberg/bench"
	"github.com/kalexmills/goldberg/edgelist"
	"github.com/kalexmills/goldberg/graph"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	fs := afero.NewMemMapFs()
	tests := []struct {
		cfg     bench.Config
		wantErr bool
	}{
		{bench.Config{Min: 2, Max: 2, Fs: fs}, false},
		{bench.Config{Min: 5, Max: 10, MaxCapacity: 7, Fs: fs}, false},
		{bench.Config{Min: 1, Max: 10, Fs: fs}, true},
		{bench.Config{Min: 6, Max: 5, Fs: fs}, true},
		{bench.Config{Min: 2, Max: 5, MaxCapacity: -1, Fs: fs}, true},
		{bench.Config{Min: 2, Max: 5}, true},
	}
	for idx, test := range tests {
		err := test.cfg.Validate()
		if test.wantErr {
			assert.Error(t, err, "test #%d", idx)
		} else {
			assert.NoError(t, err, "test #%d", idx)
		}
	}
}

func TestRandomEdgesIsDeterministic(t *testing.T) {
	a := bench.RandomEdges(rand.New(rand.NewSource(7)), 12, 50)
	b := bench.RandomEdges(rand.New(rand.NewSource(7)), 12, 50)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)

	for _, l := range a {
		assert.Less(t, l.U, l.V)
		assert.Greater(t, l.Capacity, int64(0))
		assert.LessOrEqual(t, l.Capacity, int64(50))
	}
}

func TestCompareAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 2; n <= 25; n++ {
		result, err := bench.Compare(n, bench.RandomEdges(rng, n, 50))
		require.NoError(t, err, "n = %d", n)
		assert.Equal(t, result.Generic.Flow, result.LiftToFront.Flow)
		assert.Greater(t, result.LiftToFront.Memory, result.Generic.Memory)
	}
}

func TestEstimateMemory(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 3, 3))

	// 4 vertices of 16 bytes, one table pointer, 16 edge pointers, and 4 edges of 16 bytes on
	// 64-bit platforms.
	generic := bench.EstimateMemory(g, goldberg.Generic)
	liftToFront := bench.EstimateMemory(g, goldberg.LiftToFront)
	if strconv.IntSize == 64 {
		assert.Equal(t, int64(4*16+8+16*8+4*16), generic)
		assert.Equal(t, generic+4*8, liftToFront)
	}
}

func TestRunWritesReports(t *testing.T) {
	fs := afero.NewMemMapFs()
	results, err := bench.Run(bench.Config{
		Min:        3,
		Max:        6,
		Seed:       1,
		Fs:         fs,
		Dir:        "/out",
		KeepGraphs: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	for _, name := range bench.ReportNames() {
		content, err := afero.ReadFile(fs, filepath.Join("/out", name))
		require.NoError(t, err, name)

		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 4, name)
		for idx, line := range lines {
			assert.True(t, strings.HasPrefix(line, []string{"3, ", "4, ", "5, ", "6, "}[idx]), "%s: %q", name, line)
		}
	}

	// generated graphs can be read back and solved to the same value.
	for _, result := range results {
		lines, err := edgelist.ReadFile(fs, filepath.Join("/out", "graph_"+strconv.Itoa(result.Vertices)+".txt"))
		require.NoError(t, err)
		m, err := bench.Measure(goldberg.Generic, result.Vertices, lines)
		require.NoError(t, err)
		assert.Equal(t, result.Generic.Flow, m.Flow)
	}
}

func TestWriteReportsFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	results := []bench.Result{{
		Vertices:    10,
		Generic:     bench.Measurement{Elapsed: 30 * time.Millisecond, Memory: 100},
		LiftToFront: bench.Measurement{Elapsed: 12 * time.Millisecond, Memory: 140},
	}}
	require.NoError(t, bench.WriteReports(fs, "/r", results))

	expect := map[string]string{
		"output_time_generic.txt":         "10, 30\n",
		"output_time_lift_to_front.txt":   "10, 12\n",
		"output_time_difference.txt":      "10, 18\n",
		"output_memory_generic.txt":       "10, 100\n",
		"output_memory_lift_to_front.txt": "10, 140\n",
		"output_memory_difference.txt":    "10, 40\n",
	}
	for name, want := range expect {
		got, err := afero.ReadFile(fs, filepath.Join("/r", name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got), name)
	}
}
