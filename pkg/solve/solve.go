package solve

import (
	"fmt"
	"strings"
)

// An Assignment binds each propositional variable (1-based, index i holds
// variable i+1) to a truth value. Assignments are immutable snapshots: the
// engine never touches a delivered model again.
type Assignment []bool

// A Cardinality constrains the number of true literals among Lits to exactly K.
type Cardinality struct {
	Lits []int
	K    int
}

// A Problem is the propositional form of an encoding, plus its high-level
// program text for engines that consume the text directly.
type Problem struct {
	Vars    int
	Clauses [][]int      // At-least-one disjunctions over signed literals
	Exact   *Cardinality // Optional exact cardinality constraint
	Min     []int        // Optional minimization objective, weight 1 per literal
	Source  string       // Logic-program text equivalent of the lowering
	Atoms   []string     // Atoms[i] is the shown atom naming variable i+1 in Source
}

// OPB renders the problem in OPB pseudo-boolean syntax, the ingestion format
// of the embedded engine.
func (p Problem) OPB() string {
	var builder strings.Builder
	constraints := len(p.Clauses)
	if p.Exact != nil {
		constraints++
	}
	fmt.Fprintf(&builder, "* #variable= %d #constraint= %d\n", p.Vars, constraints)
	if p.Min != nil {
		builder.WriteString("min:")
		writeTerms(&builder, p.Min)
		builder.WriteString(" ;\n")
	}
	for _, clause := range p.Clauses {
		writeTerms(&builder, clause)
		builder.WriteString(" >= 1 ;\n")
	}
	if p.Exact != nil {
		writeTerms(&builder, p.Exact.Lits)
		fmt.Fprintf(&builder, " = %d ;\n", p.Exact.K)
	}
	return builder.String()
}

func writeTerms(builder *strings.Builder, lits []int) {
	for _, literal := range lits {
		if literal < 0 {
			fmt.Fprintf(builder, " +1 ~x%d", -literal)
		} else {
			fmt.Fprintf(builder, " +1 x%d", literal)
		}
	}
}

// Options is the caller-supplied solving configuration.
type Options struct {
	// MaxModels caps the number of delivered models; 0 means all of them.
	MaxModels int
	// AllOptimal asks for every model at the proven optimum instead of the
	// first one found.
	AllOptimal bool
	// OnImprove, if set, receives each improving model discovered during an
	// optimization run, before optimality is proven.
	OnImprove func(model Assignment, cost int)
}

// An Outcome is the result of one solving run.
type Outcome struct {
	Status  Status
	Models  []Assignment
	Cost    int  // Proven minimum for optimization problems, -1 otherwise
	Optimal bool // True once no strictly better model can exist
}
