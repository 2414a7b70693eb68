package graph

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// An Instance is the raw on-disk description of a graph.
type Instance struct {
	Vertices []string
	Edges    [][]string
}

// InstanceFromJSON reads and decodes a graph instance file.
func InstanceFromJSON(file string) (Instance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return Instance{}, fmt.Errorf("cannot read instance file: %v", err)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Instance{}, fmt.Errorf("cannot parse instance file: %v", err)
	}

	var instance Instance
	if err := mapstructure.Decode(inputJson, &instance); err != nil {
		return Instance{}, fmt.Errorf("cannot decode instance: %v", err)
	}
	return instance, nil
}

// Graph validates the instance and builds the graph it describes.
func (instance Instance) Graph() (*Graph, error) {
	vertices := lo.Map(instance.Vertices, func(vertex string, _ int) Vertex { return Vertex(vertex) })
	edges := make([][2]Vertex, 0, len(instance.Edges))
	for _, edge := range instance.Edges {
		if len(edge) != 2 {
			return nil, fmt.Errorf("edge %v must have exactly two endpoints", edge)
		}
		edges = append(edges, [2]Vertex{Vertex(edge[0]), Vertex(edge[1])})
	}
	return New(vertices, edges)
}
