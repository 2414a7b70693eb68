package domset

import (
	"math/bits"

	"github.com/samber/lo"

	"github.com/graphsat/domset/pkg/graph"
)

// Verify reports whether the chosen set dominates every vertex of the graph:
// each vertex is either chosen itself or adjacent to a chosen vertex.
func Verify(g *graph.Graph, chosen []graph.Vertex) bool {
	set := make(map[graph.Vertex]bool, len(chosen))
	for _, vertex := range chosen {
		if !g.HasVertex(vertex) {
			return false
		}
		set[vertex] = true
	}
	return !lo.SomeBy(g.Vertices(), func(vertex graph.Vertex) bool {
		if set[vertex] {
			return false
		}
		return !lo.SomeBy(g.Neighbors(vertex), func(neighbor graph.Vertex) bool { return set[neighbor] })
	})
}

// BruteForceDominatingSets enumerates every dominating set of size exactly k
// by direct subset iteration. Intended for cross-checking the solving engine
// on small graphs only.
func BruteForceDominatingSets(g *graph.Graph, k int) [][]graph.Vertex {
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		if k == 0 {
			return [][]graph.Vertex{{}}
		}
		return nil
	}

	var sets [][]graph.Vertex
	for mask := uint64(0); mask < uint64(1)<<n; mask++ {
		if bits.OnesCount64(mask) != k {
			continue
		}
		subset := make([]graph.Vertex, 0, k)
		for i := range n {
			if mask&(uint64(1)<<i) != 0 {
				subset = append(subset, vertices[i])
			}
		}
		if Verify(g, subset) {
			sets = append(sets, subset)
		}
	}
	return sets
}

// BruteForceMinimum returns the domination number of the graph, i.e. the
// cardinality of its minimum dominating sets.
func BruteForceMinimum(g *graph.Graph) int {
	for k := 0; k <= g.Order(); k++ {
		if len(BruteForceDominatingSets(g, k)) > 0 {
			return k
		}
	}
	return g.Order() // Unreachable: the full vertex set always dominates
}
