// partite_flow generates random multipartite flow networks for testing.
//
// Vertex 0 is the source and feeds every vertex of the first layer; every vertex of the last layer
// feeds the sink, which is the highest-numbered vertex. The expected flow of generated instances is
// unknown, so it is written as -1 and the instances are only sanity checked.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/kalexmills/goldberg/edgelist"
)

func main() {
	rng := rand.New(rand.NewSource(time.Now().Unix()))
	for idx, sizes := range [][]int{{10, 10}, {100, 10}, {10, 100}} {
		writeFile(fmt.Sprintf("bipartite_random_%d.flow", idx), makeMultipartite(rng, 3, sizes...), -1)
	}
	for idx, sizes := range [][]int{{10, 100, 10}, {100, 10, 100}, {10, 10, 10}} {
		writeFile(fmt.Sprintf("tripartite_random_%d.flow", idx), makeMultipartite(rng, 5, sizes...), -1)
	}
	for idx, sizes := range [][]int{{50, 100, 50, 100, 50, 100}} {
		writeFile(fmt.Sprintf("multipartite_medium_%d.flow", idx), makeMultipartite(rng, 5, sizes...), -1)
	}
}

// makeMultipartite creates a multipartite graph, which is a few bipartite graphs connected end-to-end.
// Half of the possible edges between adjacent layers are present, each with a capacity drawn from
// [1, maxCapacity].
func makeMultipartite(rng *rand.Rand, maxCapacity int64, sizes ...int) []edgelist.Line {
	var result []edgelist.Line
	total := 0
	for _, size := range sizes {
		total += size
	}
	sink := total + 1

	minSIdx := 1
	for i := minSIdx; i < minSIdx+sizes[0]; i++ {
		result = append(result, edgelist.Line{U: 0, V: i, Capacity: 1 + rng.Int63n(10)})
	}
	for k := 1; k < len(sizes); k++ {
		minTIdx := minSIdx + sizes[k-1]
		maxTIdx := minTIdx + sizes[k]
		for i := minSIdx; i < minTIdx; i++ {
			for j := minTIdx; j < maxTIdx; j++ {
				if rng.Float32() < 0.5 {
					result = append(result, edgelist.Line{U: i, V: j, Capacity: 1 + rng.Int63n(maxCapacity)})
				}
			}
		}
		minSIdx += sizes[k-1]
	}
	for i := minSIdx; i < sink; i++ {
		result = append(result, edgelist.Line{U: i, V: sink, Capacity: 1 + rng.Int63n(10)})
	}
	return result
}

func writeFile(name string, lines []edgelist.Line, expected int64) {
	f, err := os.OpenFile(name, os.O_TRUNC|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()
	fmt.Fprintf(f, "%d\n", expected)
	if err := edgelist.Write(f, lines); err != nil {
		log.Fatalln(err)
	}
}
