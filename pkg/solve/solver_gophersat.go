package solve

import (
	"fmt"
	"slices"
	"strings"

	gophersat "github.com/crillab/gophersat/solver"
)

// gophersatSolver is the embedded solving engine. It grounds the OPB
// rendering of the problem and delegates model search to gophersat.
type gophersatSolver struct{}

func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(problem Problem, options Options) (Outcome, error) {
	if problem.Min != nil {
		return solver.minimize(problem, options)
	}
	return solver.enumerate(problem, options.MaxModels)
}

// ground parses the OPB rendering into a gophersat problem. Grounding
// failures are surfaced verbatim, they are not part of the encoding's own
// error taxonomy.
func (solver *gophersatSolver) ground(problem Problem) (*gophersat.Problem, error) {
	pb, err := gophersat.ParseOPB(strings.NewReader(problem.OPB()))
	if err != nil {
		return nil, fmt.Errorf("cannot ground problem: %v", err)
	}
	return pb, nil
}

func (solver *gophersatSolver) enumerate(problem Problem, maxModels int) (Outcome, error) {
	pb, err := solver.ground(problem)
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Status: Unsat, Cost: -1}
	if pb.Status == gophersat.Unsat { // Trivially unsatisfiable during grounding
		return outcome, nil
	}

	s := gophersat.New(pb)
	models := make(chan []bool)
	go s.Enumerate(models, nil)
	for model := range models {
		// The engine runs to exhaustion; models beyond the cap are drained and dropped
		if maxModels == 0 || len(outcome.Models) < maxModels {
			assignment := make(Assignment, problem.Vars)
			copy(assignment, model)
			outcome.Models = append(outcome.Models, assignment)
		}
	}
	if len(outcome.Models) > 0 {
		outcome.Status = Sat
	}
	return outcome, nil
}

// minimize performs branch-and-bound search: each satisfying model tightens
// the admissible cost until the engine reports unsatisfiability, which is the
// optimality proof for the best model met so far.
func (solver *gophersatSolver) minimize(problem Problem, options Options) (Outcome, error) {
	pb, err := solver.ground(problem)
	if err != nil {
		return Outcome{}, err
	}
	outcome := Outcome{Status: Unsat, Cost: -1}
	if pb.Status == gophersat.Unsat {
		return outcome, nil
	}

	s := gophersat.New(pb)
	var best Assignment
	cost := 0
	for status := s.Solve(); status == gophersat.Sat; status = s.Solve() {
		model := s.Model()
		best = make(Assignment, problem.Vars)
		copy(best, model)
		cost = objectiveCost(problem.Min, best)
		outcome.Status = Sat
		if options.OnImprove != nil {
			options.OnImprove(slices.Clone(best), cost)
		}
		if cost == 0 {
			break
		}
		// Demand a strictly cheaper model on the next run
		s.AppendClause(gophersat.AtMost(slices.Clone(problem.Min), cost-1).Clause())
	}
	if outcome.Status == Unsat {
		return outcome, nil
	}

	outcome.Cost = cost
	outcome.Optimal = true // The loop only stops once no cheaper model exists
	if !options.AllOptimal {
		outcome.Models = []Assignment{best}
		return outcome, nil
	}

	// Re-enumerate with the proven optimum fixed as a cardinality constraint
	fixed := problem
	fixed.Min = nil
	fixed.Exact = &Cardinality{Lits: problem.Min, K: cost}
	enumerated, err := solver.enumerate(fixed, options.MaxModels)
	if err != nil {
		return Outcome{}, err
	}
	outcome.Models = enumerated.Models
	return outcome, nil
}

func objectiveCost(lits []int, model Assignment) int {
	cost := 0
	for _, literal := range lits {
		if literal > 0 && model[literal-1] || literal < 0 && !model[-literal-1] {
			cost++
		}
	}
	return cost
}
