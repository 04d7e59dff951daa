// cycle flow generates random tests by adding cycles to a graph.
//
// Vertices 1..nodes carry the cycles; vertex 0 is the source and vertex nodes+1 the sink.
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

	for idx, sizes := range [][]int{uniformCycles(rng, 20, 10), uniformCycles(rng, 10, 20)} {
		writeFile(fmt.Sprintf("cycles_small_%d.flow", idx), makeCyclic(rng, 100, sizes...), -1)
	}
	for idx, sizes := range [][]int{uniformCycles(rng, 50, 50), uniformCycles(rng, 60, 40), uniformCycles(rng, 70, 30)} {
		writeFile(fmt.Sprintf("cycles_medium_%d.flow", idx), makeCyclic(rng, 100, sizes...), -1)
	}
}

func uniformCycles(rng *rand.Rand, n, maxLength int) []int {
	result := make([]int, n)
	for i := 0; i < n; i++ {
		result[i] = rng.Intn(maxLength-2) + 2
	}
	return result
}

// makeCyclic creates a graph formed by layering a bunch of cycles ontop of one another. Each
// size entry is the length of a directed cycle to add to the graph. Each cycle receives a random
// weight from 1 to 10. 10% of the nodes are connected to the source or sink with capacity 10.
func makeCyclic(rng *rand.Rand, nodes int, sizes ...int) []edgelist.Line {
	type edge struct{ from, to int }
	capacities := make(map[edge]int64)
	// add cycles
	for _, length := range sizes {
		if length > nodes {
			length = nodes
		}
		perm := rng.Perm(nodes)
		weight := 1 + rng.Int63n(10)
		for i := 0; i < length; i++ {
			from, to := perm[i]+1, perm[(i+1)%length]+1
			delete(capacities, edge{to, from})
			capacities[edge{from, to}] = weight
		}
	}
	// connect nodes to source/sink
	sink := nodes + 1
	perm := rng.Perm(nodes)
	for i := 0; i < nodes/10; i++ {
		if rng.Float32() < 0.5 {
			capacities[edge{0, perm[i] + 1}] = 10
		} else {
			capacities[edge{perm[i] + 1, sink}] = 10
		}
	}
	// the sink must be mentioned for the vertex count to be inferred.
	capacities[edge{perm[nodes-1] + 1, sink}] = 10

	var result []edgelist.Line
	for e, c := range capacities {
		result = append(result, edgelist.Line{U: e.from, V: e.to, Capacity: c})
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
