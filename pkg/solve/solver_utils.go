package solve

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type clingoAnswer struct {
	atoms []string
	cost  int // Objective value reported for this answer, -1 for decision problems
}

// parseClingoOutput extracts the answer sets from clingo's standard output.
// Each "Answer: N" line is followed by a line of shown atoms; optimization
// runs additionally interleave "Optimization: C" lines and finish with
// "OPTIMUM FOUND" once the proof is complete.
func parseClingoOutput(output string) (answers []clingoAnswer, optimum bool, unsat bool) {
	lines := strings.Split(output, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		switch {
		case strings.HasPrefix(line, "Answer:"):
			if i+1 < len(lines) {
				i++
				answers = append(answers, clingoAnswer{atoms: strings.Fields(lines[i]), cost: -1})
			}
		case strings.HasPrefix(line, "Optimization:"):
			if len(answers) == 0 {
				continue
			}
			costs := strings.Fields(strings.TrimPrefix(line, "Optimization:"))
			if len(costs) > 0 {
				if cost, err := strconv.Atoi(costs[0]); err == nil {
					answers[len(answers)-1].cost = cost
				}
			}
		case line == "OPTIMUM FOUND":
			optimum = true
		case line == "UNSATISFIABLE":
			unsat = true
		}
	}
	return answers, optimum, unsat
}

// clingoCosts lists the objective value of each parsed answer, in discovery order.
func clingoCosts(answers []clingoAnswer) []int {
	return lo.Map(answers, func(answer clingoAnswer, _ int) int { return answer.cost })
}
