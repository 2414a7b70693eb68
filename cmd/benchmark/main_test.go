package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerators(t *testing.T) {
	path := pathInstance(5)
	assert.Equal(t, "path-5", path.name)
	assert.Equal(t, 5, path.graph.Order())
	assert.Len(t, path.graph.Edges(), 4)

	cycle := cycleInstance(5)
	assert.Equal(t, 5, cycle.graph.Order())
	assert.Len(t, cycle.graph.Edges(), 5)
	assert.True(t, cycle.graph.HasEdge("v5", "v1"))

	grid := gridInstance(3, 4)
	assert.Equal(t, 12, grid.graph.Order())
	assert.Len(t, grid.graph.Edges(), 3*3+2*4) // Horizontal plus vertical edges

	random := randomInstance(10, 0.3, 7)
	assert.Equal(t, 10, random.graph.Order())
	// Identical seeds must generate identical instances
	assert.Equal(t, random.graph.Edges(), randomInstance(10, 0.3, 7).graph.Edges())
}
