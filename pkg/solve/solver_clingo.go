package solve

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ClingoPath is the clingo executable fed with the logic-program text.
// Callers may point it at a specific binary before building the solver.
var ClingoPath = "clingo"

// clingoSolver is the external solving engine. It feeds the high-level
// program text to a clingo subprocess and parses the enumerated answer sets
// back through the problem's shown-atom table.
type clingoSolver struct{}

func NewClingoSolver() Solver {
	return &clingoSolver{}
}

func (solver *clingoSolver) Solve(problem Problem, options Options) (Outcome, error) {
	args := []string{"-", strconv.Itoa(options.MaxModels)}
	if problem.Min != nil {
		if options.AllOptimal {
			args = append(args, "--opt-mode=optN")
		} else {
			args = append(args, "--opt-mode=opt")
		}
	}

	cmd := exec.Command(ClingoPath, args...)
	cmd.Stdin = strings.NewReader(problem.Source) // Feed the program text into clingo's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	// Exit-code 10 stands for satisfiable, 20 for unsatisfiable and 30 for satisfiable with the search space exhausted
	code := cmd.ProcessState.ExitCode()
	if err != nil && code != 10 && code != 20 && code != 30 {
		return Outcome{}, fmt.Errorf("an error occurred during clingo execution: %v : %v", err.Error(), stderr.String())
	}

	answers, optimum, unsat := parseClingoOutput(stdOut.String())
	if unsat || code == 20 || len(answers) == 0 {
		return Outcome{Status: Unsat, Cost: -1}, nil
	}
	if problem.Min == nil {
		return solver.decision(problem, options, answers), nil
	}
	return solver.optimization(problem, options, answers, optimum), nil
}

func (solver *clingoSolver) decision(problem Problem, options Options, answers []clingoAnswer) Outcome {
	outcome := Outcome{Status: Sat, Cost: -1}
	for _, answer := range answers {
		if options.MaxModels > 0 && len(outcome.Models) == options.MaxModels {
			break
		}
		outcome.Models = append(outcome.Models, decodeAtoms(problem, answer.atoms))
	}
	return outcome
}

func (solver *clingoSolver) optimization(problem Problem, options Options, answers []clingoAnswer, optimum bool) Outcome {
	outcome := Outcome{Status: Sat, Optimal: optimum}
	outcome.Cost = answers[len(answers)-1].cost

	for _, answer := range answers {
		if options.OnImprove != nil {
			options.OnImprove(decodeAtoms(problem, answer.atoms), answer.cost)
		}
	}

	// Keep only models at the final cost; under optN clingo re-prints the
	// improving sequence before enumerating the optima, so deduplicate.
	seen := make(map[string]bool)
	for _, answer := range answers {
		if answer.cost != outcome.Cost {
			continue
		}
		model := decodeAtoms(problem, answer.atoms)
		key := fmt.Sprint(model)
		if seen[key] {
			continue
		}
		seen[key] = true
		if options.MaxModels > 0 && len(outcome.Models) == options.MaxModels {
			break
		}
		outcome.Models = append(outcome.Models, model)
		if !options.AllOptimal {
			break
		}
	}
	return outcome
}

// decodeAtoms maps shown atoms of one answer set back to an assignment over
// the problem's variables. Atoms outside the shown-atom table (such as the
// derived size/1 atom) carry no variable and are skipped.
func decodeAtoms(problem Problem, atoms []string) Assignment {
	index := make(map[string]int, len(problem.Atoms))
	for i, atom := range problem.Atoms {
		index[atom] = i
	}
	assignment := make(Assignment, problem.Vars)
	for _, atom := range atoms {
		if i, ok := index[atom]; ok {
			assignment[i] = true
		}
	}
	return assignment
}
