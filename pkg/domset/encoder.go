package domset

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/graphsat/domset/pkg/asp"
	"github.com/graphsat/domset/pkg/graph"
	"github.com/graphsat/domset/pkg/solve"
)

// An Encoding couples the logic-program text of a dominating-set problem
// with its propositional lowering. Variable i+1 of the lowering stands for
// chosen(v) where v is the i-th vertex in graph order.
type Encoding struct {
	Program *asp.Program
	Problem solve.Problem
	order   []graph.Vertex
}

// FixedK encodes the guess-and-check search for dominating sets of size
// exactly k. Answer sets of the program are in bijection with the size-k
// dominating sets of the graph.
func FixedK(g *graph.Graph, k int) Encoding {
	encoding := base(g)

	program := encoding.Program
	program.Add(asp.Const{Name: "k", Value: k})
	program.Add(asp.Choice{
		Lower:     "k",
		Upper:     "k",
		Element:   asp.NewAtom("chosen", "V"),
		Condition: asp.NewAtom("vertex", "V"),
	})
	addDomination(program)
	program.Add(asp.Show{Predicate: "chosen", Arity: 1})

	encoding.Problem.Exact = &solve.Cardinality{Lits: allVars(g.Order()), K: k}
	encoding.Problem.Source = program.String()
	return encoding
}

// Minimum encodes the search for minimum dominating sets: an unbounded
// guess over the vertices ranked by the number of chosen atoms, with the
// winning cardinality exposed through the derived size/1 atom.
func Minimum(g *graph.Graph) Encoding {
	encoding := base(g)

	program := encoding.Program
	program.Add(asp.Choice{
		Element:   asp.NewAtom("chosen", "V"),
		Condition: asp.NewAtom("vertex", "V"),
	})
	addDomination(program)
	program.Add(asp.Minimize{Weight: 1, Tuple: []asp.Term{"V"}, Condition: asp.NewAtom("chosen", "V")})
	program.Add(asp.CountRule{
		Head:      asp.NewAtom("size", "N"),
		Var:       "N",
		Tuple:     "V",
		Condition: asp.NewAtom("chosen", "V"),
	})
	program.Add(asp.Show{Predicate: "chosen", Arity: 1})
	program.Add(asp.Show{Predicate: "size", Arity: 1})

	encoding.Problem.Min = allVars(g.Order())
	encoding.Problem.Source = program.String()
	return encoding
}

// base builds the graph fact base and the domination clauses shared by both
// encodings: a vertex is dominated when it is chosen or some neighbor is.
func base(g *graph.Graph) Encoding {
	var program asp.Program
	program.Add(g.Facts()...)

	order := g.Vertices()
	clauses := make([][]int, 0, len(order))
	for i, vertex := range order {
		clause := []int{i + 1}
		for _, neighbor := range g.Neighbors(vertex) {
			j, _ := g.Index(neighbor)
			clause = append(clause, j+1)
		}
		clauses = append(clauses, clause)
	}

	return Encoding{
		Program: &program,
		Problem: solve.Problem{
			Vars:    len(order),
			Clauses: clauses,
			Atoms: lo.Map(order, func(vertex graph.Vertex, _ int) string {
				return asp.NewAtom("chosen", asp.Term(vertex)).String()
			}),
		},
		order: order,
	}
}

func addDomination(program *asp.Program) {
	chosenV := asp.NewAtom("chosen", "V")
	program.Add(
		asp.Rule{Head: asp.NewAtom("dominated", "V"), Body: []asp.Literal{asp.Pos(chosenV)}},
		asp.Rule{
			Head: asp.NewAtom("dominated", "V"),
			Body: []asp.Literal{asp.Pos(asp.NewAtom("chosen", "U")), asp.Pos(asp.NewAtom("edge", "U", "V"))},
		},
		asp.Constraint{
			Body: []asp.Literal{asp.Pos(asp.NewAtom("vertex", "V")), asp.Not(asp.NewAtom("dominated", "V"))},
		},
	)
}

func allVars(n int) []int {
	return lo.RangeFrom(1, n)
}

// Decode maps an assignment of the lowering back to the chosen vertex set.
func (e Encoding) Decode(assignment solve.Assignment) (Model, error) {
	if len(assignment) != len(e.order) {
		return Model{}, fmt.Errorf("assignment binds %v variables, encoding has %v", len(assignment), len(e.order))
	}
	chosen := make([]graph.Vertex, 0)
	for i, vertex := range e.order {
		if assignment[i] {
			chosen = append(chosen, vertex)
		}
	}
	return Model{Chosen: chosen, Size: len(chosen)}, nil
}
