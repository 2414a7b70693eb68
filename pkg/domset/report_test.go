package domset

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/graphsat/domset/pkg/graph"
)

func TestFormatModel(t *testing.T) {
	assert.Equal(t, "{v3, v7}", FormatModel(Model{Chosen: []graph.Vertex{"v3", "v7"}}))
	assert.Equal(t, "{}", FormatModel(Model{}))
}

func TestFormatModels(t *testing.T) {
	models := []Model{
		{Chosen: []graph.Vertex{"v3", "v5"}, Size: 2, Optimal: true},
		{Chosen: []graph.Vertex{"v1", "v5"}, Size: 2, Optimal: true},
	}
	expected := "Answer 1: {v3, v5} (size 2, optimum)\n" +
		"Answer 2: {v1, v5} (size 2, optimum)\n"
	assert.Equal(t, expected, FormatModels(models))

	assert.Equal(t, "Answer 1: {v1, v2, v5}\n", FormatModels([]Model{
		{Chosen: []graph.Vertex{"v1", "v2", "v5"}, Size: 3},
	}))
}
