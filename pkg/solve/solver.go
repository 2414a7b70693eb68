package solve

// Status is the verdict of a solving run. There are only two final verdicts:
// a problem either has at least one model or none at all.
type Status int

const (
	Unknown Status = iota
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SATISFIABLE"
	case Unsat:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// A Solver grounds a problem and enumerates its models. For decision
// problems every model is delivered, up to the caller's cap. For
// optimization problems the run converges on the proven minimum and
// delivers either the first optimal model or all of them.
type Solver interface {
	Solve(problem Problem, options Options) (Outcome, error)
}
