package domset

import (
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphsat/domset/pkg/graph"
	"github.com/graphsat/domset/pkg/solve"
)

// The example graph of the walkthrough: two triangles v1-v2-v3 and v5-v6-v7
// bridged through v4.
func exampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(
		[]graph.Vertex{"v1", "v2", "v3", "v4", "v5", "v6", "v7"},
		[][2]graph.Vertex{
			{"v1", "v2"}, {"v1", "v3"}, {"v2", "v3"}, {"v3", "v4"},
			{"v4", "v5"}, {"v5", "v6"}, {"v5", "v7"}, {"v6", "v7"},
		},
	)
	require.NoError(t, err)
	return g
}

func key(vertices []graph.Vertex) string {
	names := lo.Map(vertices, func(vertex graph.Vertex, _ int) string { return string(vertex) })
	return strings.Join(names, ",")
}

func keys(models []Model) []string {
	return lo.Map(models, func(model Model, _ int) string { return key(model.Chosen) })
}

func TestEnumerateFixedK(t *testing.T) {
	solver := solve.NewGophersatSolver()
	g := exampleGraph(t)

	t.Run("Size three is satisfiable", func(t *testing.T) {
		models, err := EnumerateFixedK(solver, g, 3, solve.Options{})
		require.NoError(t, err)
		require.NotNil(t, models)

		for _, model := range models {
			assert.Len(t, model.Chosen, 3)
			assert.True(t, Verify(g, model.Chosen), "model %v is not dominating", model.Chosen)
		}
		assert.Contains(t, keys(models), "v1,v2,v5")
		assert.Contains(t, keys(models), "v3,v4,v7")
	})

	t.Run("Sound and complete against brute force", func(t *testing.T) {
		for k := 2; k <= 4; k++ {
			models, err := EnumerateFixedK(solver, g, k, solve.Options{})
			require.NoError(t, err)
			expected := lo.Map(BruteForceDominatingSets(g, k), func(set []graph.Vertex, _ int) string {
				return key(set)
			})
			assert.ElementsMatch(t, expected, keys(models), "size %v", k)
		}
	})

	t.Run("No dominating singleton", func(t *testing.T) {
		models, err := EnumerateFixedK(solver, g, 1, solve.Options{})
		require.NoError(t, err)
		assert.Nil(t, models) // UNSATISFIABLE
	})

	t.Run("Model cap", func(t *testing.T) {
		models, err := EnumerateFixedK(solver, g, 3, solve.Options{MaxModels: 2})
		require.NoError(t, err)
		assert.Len(t, models, 2)
	})

	t.Run("Boundaries", func(t *testing.T) {
		models, err := EnumerateFixedK(solver, g, 0, solve.Options{})
		require.NoError(t, err)
		assert.Nil(t, models) // The empty set dominates nothing here

		models, err = EnumerateFixedK(solver, g, g.Order()+1, solve.Options{})
		require.NoError(t, err)
		assert.Nil(t, models)

		models, err = EnumerateFixedK(solver, g, g.Order(), solve.Options{})
		require.NoError(t, err)
		require.Len(t, models, 1) // The full vertex set
		assert.Equal(t, "v1,v2,v3,v4,v5,v6,v7", key(models[0].Chosen))

		_, err = EnumerateFixedK(solver, g, -1, solve.Options{})
		assert.Error(t, err)
	})

	t.Run("Empty graph", func(t *testing.T) {
		empty, err := graph.New(nil, nil)
		require.NoError(t, err)

		models, err := EnumerateFixedK(solver, empty, 0, solve.Options{})
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Empty(t, models[0].Chosen)

		models, err = EnumerateFixedK(solver, empty, 1, solve.Options{})
		require.NoError(t, err)
		assert.Nil(t, models)
	})
}

func TestEnumerateMinimum(t *testing.T) {
	solver := solve.NewGophersatSolver()
	g := exampleGraph(t)

	t.Run("All optimal models", func(t *testing.T) {
		models, err := EnumerateMinimum(solver, g, solve.Options{AllOptimal: true})
		require.NoError(t, err)
		require.NotNil(t, models)

		for _, model := range models {
			assert.Equal(t, 2, model.Size)
			assert.True(t, model.Optimal)
			assert.True(t, Verify(g, model.Chosen))
		}
		assert.ElementsMatch(t,
			[]string{"v3,v5", "v3,v6", "v3,v7", "v1,v5", "v2,v5"},
			keys(models),
		)
	})

	t.Run("First optimal model", func(t *testing.T) {
		models, err := EnumerateMinimum(solver, g, solve.Options{})
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Equal(t, 2, models[0].Size)
		assert.True(t, models[0].Optimal)
		assert.True(t, Verify(g, models[0].Chosen))
	})

	t.Run("Matches brute force minimum", func(t *testing.T) {
		models, err := EnumerateMinimum(solver, g, solve.Options{})
		require.NoError(t, err)
		require.NotEmpty(t, models)
		assert.Equal(t, BruteForceMinimum(g), models[0].Size)
	})

	t.Run("Improving models reach the optimum", func(t *testing.T) {
		var costs []int
		_, err := EnumerateMinimum(solver, g, solve.Options{
			OnImprove: func(model solve.Assignment, cost int) { costs = append(costs, cost) },
		})
		require.NoError(t, err)
		require.NotEmpty(t, costs)
		assert.Equal(t, 2, costs[len(costs)-1])
	})

	t.Run("Empty graph", func(t *testing.T) {
		empty, err := graph.New(nil, nil)
		require.NoError(t, err)
		models, err := EnumerateMinimum(solver, empty, solve.Options{AllOptimal: true})
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Empty(t, models[0].Chosen)
		assert.True(t, models[0].Optimal)
	})

	t.Run("Isolated vertices must be chosen", func(t *testing.T) {
		isolated, err := graph.New([]graph.Vertex{"a", "b"}, nil)
		require.NoError(t, err)
		models, err := EnumerateMinimum(solver, isolated, solve.Options{AllOptimal: true})
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Equal(t, "a,b", key(models[0].Chosen))
	})
}
