package domset

import (
	"fmt"

	"github.com/graphsat/domset/pkg/graph"
	"github.com/graphsat/domset/pkg/solve"
)

// A Model is one answer set projected onto its shown atoms: the chosen
// vertex set, its cardinality, and whether the engine proved that no
// smaller dominating set exists. Models are immutable snapshots.
type Model struct {
	Chosen  []graph.Vertex
	Size    int
	Optimal bool
}

// EnumerateFixedK enumerates the dominating sets of g with size exactly k,
// up to the caller's model cap. A nil result means the instance is
// unsatisfiable: no size-k dominating set exists.
func EnumerateFixedK(solver solve.Solver, g *graph.Graph, k int, options solve.Options) ([]Model, error) {
	if k < 0 {
		return nil, fmt.Errorf("size bound must be non-negative: %v", k)
	}
	if g.Order() == 0 {
		// The empty set dominates the empty graph, and is its only candidate
		if k == 0 {
			return []Model{{Chosen: []graph.Vertex{}}}, nil
		}
		return nil, nil
	}
	if k == 0 {
		return nil, nil // Some vertex exists and nothing dominates it
	}

	encoding := FixedK(g, k)
	outcome, err := solver.Solve(encoding.Problem, options)
	if err != nil {
		return nil, err
	}
	if outcome.Status != solve.Sat {
		return nil, nil
	}
	return decodeAll(encoding, outcome)
}

// EnumerateMinimum finds the minimum dominating sets of g. Depending on the
// options it reports the first proven-optimal model or every model at the
// proven-optimal cardinality, again bounded by the model cap.
func EnumerateMinimum(solver solve.Solver, g *graph.Graph, options solve.Options) ([]Model, error) {
	if g.Order() == 0 {
		return []Model{{Chosen: []graph.Vertex{}, Optimal: true}}, nil
	}

	encoding := Minimum(g)
	outcome, err := solver.Solve(encoding.Problem, options)
	if err != nil {
		return nil, err
	}
	if outcome.Status != solve.Sat {
		return nil, nil
	}
	return decodeAll(encoding, outcome)
}

func decodeAll(encoding Encoding, outcome solve.Outcome) ([]Model, error) {
	models := make([]Model, 0, len(outcome.Models))
	for _, assignment := range outcome.Models {
		model, err := encoding.Decode(assignment)
		if err != nil {
			return nil, err
		}
		model.Optimal = outcome.Optimal
		models = append(models, model)
	}
	return models, nil
}
