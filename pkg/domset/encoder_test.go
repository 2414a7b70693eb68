package domset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphsat/domset/pkg/graph"
	"github.com/graphsat/domset/pkg/solve"
)

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]graph.Vertex{"a", "b", "c"},
		[][2]graph.Vertex{{"a", "b"}, {"b", "c"}, {"a", "c"}},
	)
	require.NoError(t, err)
	return g
}

func TestFixedKProgram(t *testing.T) {
	g := triangle(t)
	encoding := FixedK(g, 2)
	text := encoding.Program.String()

	for _, line := range []string{
		"vertex(a).",
		"vertex(b).",
		"vertex(c).",
		"edge(a,b).",
		"edge(U,V) :- edge(V,U).",
		"#const k=2.",
		"k { chosen(V) : vertex(V) } k.",
		"dominated(V) :- chosen(V).",
		"dominated(V) :- chosen(U), edge(U,V).",
		":- vertex(V), not dominated(V).",
		"#show chosen/1.",
	} {
		assert.Contains(t, text, line+"\n")
	}
	assert.NotContains(t, text, "#minimize")
	assert.Equal(t, text, encoding.Problem.Source)
}

func TestMinimumProgram(t *testing.T) {
	g := triangle(t)
	encoding := Minimum(g)
	text := encoding.Program.String()

	for _, line := range []string{
		"{ chosen(V) : vertex(V) }.",
		"#minimize { 1,V : chosen(V) }.",
		"size(N) :- N = #count { V : chosen(V) }.",
		"#show chosen/1.",
		"#show size/1.",
	} {
		assert.Contains(t, text, line+"\n")
	}
	assert.NotContains(t, text, "#const")
}

func TestLowering(t *testing.T) {
	g := triangle(t)

	t.Run("Domination clauses", func(t *testing.T) {
		encoding := FixedK(g, 1)
		// One clause per vertex: itself or a neighbor must be chosen
		require.Len(t, encoding.Problem.Clauses, 3)
		for _, clause := range encoding.Problem.Clauses {
			assert.ElementsMatch(t, []int{1, 2, 3}, clause) // Triangle: everyone dominates everyone
		}
		require.NotNil(t, encoding.Problem.Exact)
		assert.Equal(t, 1, encoding.Problem.Exact.K)
		assert.Equal(t, []int{1, 2, 3}, encoding.Problem.Exact.Lits)
		assert.Nil(t, encoding.Problem.Min)
	})

	t.Run("Objective", func(t *testing.T) {
		encoding := Minimum(g)
		assert.Equal(t, []int{1, 2, 3}, encoding.Problem.Min)
		assert.Nil(t, encoding.Problem.Exact)
	})

	t.Run("Shown atoms", func(t *testing.T) {
		encoding := Minimum(g)
		assert.Equal(t, []string{"chosen(a)", "chosen(b)", "chosen(c)"}, encoding.Problem.Atoms)
	})

	t.Run("OPB round trip", func(t *testing.T) {
		encoding := Minimum(g)
		opb := encoding.Problem.OPB()
		assert.True(t, strings.HasPrefix(opb, "* #variable= 3 #constraint= 3\nmin: +1 x1 +1 x2 +1 x3 ;\n"))
	})
}

func TestDecode(t *testing.T) {
	g := triangle(t)
	encoding := FixedK(g, 2)

	t.Run("Chosen vertices follow graph order", func(t *testing.T) {
		model, err := encoding.Decode(solve.Assignment{true, false, true})
		require.NoError(t, err)
		assert.Equal(t, []graph.Vertex{"a", "c"}, model.Chosen)
		assert.Equal(t, 2, model.Size)
	})

	t.Run("Arity mismatch", func(t *testing.T) {
		_, err := encoding.Decode(solve.Assignment{true})
		assert.ErrorContains(t, err, "binds 1 variables")
	})
}
