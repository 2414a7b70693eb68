package asp

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// A Term is either a constant (lowercase or numeric) or a variable (leading uppercase).
type Term string

func (t Term) IsVariable() bool {
	return len(t) > 0 && (t[0] == '_' || (t[0] >= 'A' && t[0] <= 'Z'))
}

type Atom struct {
	Predicate string
	Args      []Term
}

func NewAtom(predicate string, args ...Term) Atom {
	return Atom{Predicate: predicate, Args: args}
}

func (a Atom) String() string {
	if len(a.Args) == 0 {
		return a.Predicate
	}
	args := lo.Map(a.Args, func(arg Term, _ int) string { return string(arg) })
	return fmt.Sprintf("%v(%v)", a.Predicate, strings.Join(args, ","))
}

// A Literal is an atom, possibly under default negation.
type Literal struct {
	Atom    Atom
	Negated bool
}

func Pos(atom Atom) Literal {
	return Literal{Atom: atom}
}

func Not(atom Atom) Literal {
	return Literal{Atom: atom, Negated: true}
}

func (l Literal) String() string {
	if l.Negated {
		return "not " + l.Atom.String()
	}
	return l.Atom.String()
}

// A Statement is any construct that renders to a single "."-terminated line of program text.
type Statement interface {
	String() string
}

// Fact asserts a ground atom unconditionally: "vertex(v1).".
type Fact struct {
	Head Atom
}

func (f Fact) String() string {
	return f.Head.String() + "."
}

// Rule derives its head whenever every body literal holds: "dominated(V) :- chosen(U), edge(U,V).".
type Rule struct {
	Head Atom
	Body []Literal
}

func (r Rule) String() string {
	return fmt.Sprintf("%v :- %v.", r.Head, joinLiterals(r.Body))
}

// Constraint is a headless rule eliminating every model that satisfies its body.
type Constraint struct {
	Body []Literal
}

func (c Constraint) String() string {
	return fmt.Sprintf(":- %v.", joinLiterals(c.Body))
}

func joinLiterals(literals []Literal) string {
	rendered := lo.Map(literals, func(literal Literal, _ int) string { return literal.String() })
	return strings.Join(rendered, ", ")
}

// Choice non-deterministically selects atoms from a domain, subject to
// optional cardinality bounds: "k { chosen(V) : vertex(V) } k.". A bound is
// either a numeric constant, the name of a #const declaration, or empty for
// no bound at all.
type Choice struct {
	Lower     Term
	Upper     Term
	Element   Atom
	Condition Atom
}

func (c Choice) String() string {
	var builder strings.Builder
	if c.Lower != "" {
		fmt.Fprintf(&builder, "%v ", c.Lower)
	}
	fmt.Fprintf(&builder, "{ %v : %v }", c.Element, c.Condition)
	if c.Upper != "" {
		fmt.Fprintf(&builder, " %v", c.Upper)
	}
	builder.WriteString(".")
	return builder.String()
}

// Minimize ranks models by the sum of Weight over every instantiation of
// Condition: "#minimize { 1,V : chosen(V) }.".
type Minimize struct {
	Weight    int
	Tuple     []Term
	Condition Atom
}

func (m Minimize) String() string {
	terms := lo.Map(m.Tuple, func(term Term, _ int) string { return string(term) })
	return fmt.Sprintf("#minimize { %v,%v : %v }.", m.Weight, strings.Join(terms, ","), m.Condition)
}

// CountRule binds a head argument to the number of instantiations of
// Condition: "size(N) :- N = #count { V : chosen(V) }.".
type CountRule struct {
	Head      Atom
	Var       Term
	Tuple     Term
	Condition Atom
}

func (c CountRule) String() string {
	return fmt.Sprintf("%v :- %v = #count { %v : %v }.", c.Head, c.Var, c.Tuple, c.Condition)
}

// Show restricts model output to the given predicate: "#show chosen/1.".
type Show struct {
	Predicate string
	Arity     int
}

func (s Show) String() string {
	return fmt.Sprintf("#show %v/%v.", s.Predicate, s.Arity)
}

// Const declares a named numeric constant: "#const k=3.".
type Const struct {
	Name  string
	Value int
}

func (c Const) String() string {
	return fmt.Sprintf("#const %v=%v.", c.Name, c.Value)
}

// A Program is an ordered sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Add(statements ...Statement) {
	p.Statements = append(p.Statements, statements...)
}

func (p *Program) String() string {
	var builder strings.Builder
	for _, statement := range p.Statements {
		builder.WriteString(statement.String())
		builder.WriteString("\n")
	}
	return builder.String()
}

// ParseAtom parses a ground atom as printed by a solver, e.g. "chosen(v1)" or "size(2)".
func ParseAtom(s string) (Atom, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open == -1 {
		if s == "" {
			return Atom{}, fmt.Errorf("cannot parse empty atom")
		}
		return Atom{Predicate: s}, nil
	}
	if s[len(s)-1] != ')' || open == 0 {
		return Atom{}, fmt.Errorf("cannot parse atom %q", s)
	}
	args := lo.Map(strings.Split(s[open+1:len(s)-1], ","), func(arg string, _ int) Term {
		return Term(strings.TrimSpace(arg))
	})
	return Atom{Predicate: s[:open], Args: args}, nil
}
