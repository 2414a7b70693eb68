package graph

import (
	"fmt"
	"slices"

	"github.com/graphsat/domset/pkg/asp"
)

// A Vertex is an opaque symbol identifying a node of the graph.
type Vertex string

// A Graph is an undirected graph over symbolic vertices. Edges are stored
// symmetrically: adding u-v makes both directions visible to every consumer,
// so the propositional lowering never depends on the self-referential
// symmetry rule of the text rendering.
type Graph struct {
	vertices []Vertex // Insertion order, also the propositional variable order
	index    map[Vertex]int
	adjacent map[Vertex][]Vertex
	edges    [][2]Vertex // Edges as given, one entry per undirected edge
}

// New builds a graph from a vertex list and a list of unordered vertex pairs.
// Edges referencing unknown vertices and duplicate vertices violate the
// construction contract and are reported as errors.
func New(vertices []Vertex, edges [][2]Vertex) (*Graph, error) {
	graph := &Graph{
		index:    make(map[Vertex]int, len(vertices)),
		adjacent: make(map[Vertex][]Vertex, len(vertices)),
	}
	for _, vertex := range vertices {
		if _, ok := graph.index[vertex]; ok {
			return nil, fmt.Errorf("duplicate vertex %q", vertex)
		}
		graph.index[vertex] = len(graph.vertices)
		graph.vertices = append(graph.vertices, vertex)
	}
	for _, edge := range edges {
		if err := graph.addEdge(edge[0], edge[1]); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

func (g *Graph) addEdge(u, v Vertex) error {
	if _, ok := g.index[u]; !ok {
		return fmt.Errorf("edge endpoint %q is not a declared vertex", u)
	}
	if _, ok := g.index[v]; !ok {
		return fmt.Errorf("edge endpoint %q is not a declared vertex", v)
	}
	if u == v {
		return fmt.Errorf("self-loop on vertex %q", u)
	}
	if slices.Contains(g.adjacent[u], v) {
		return nil // Ignore a repeated edge, whatever its direction
	}
	g.adjacent[u] = append(g.adjacent[u], v)
	g.adjacent[v] = append(g.adjacent[v], u)
	g.edges = append(g.edges, [2]Vertex{u, v})
	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	return len(g.vertices)
}

// Vertices returns the vertices in insertion order.
func (g *Graph) Vertices() []Vertex {
	return slices.Clone(g.vertices)
}

// Edges returns one entry per undirected edge, as given at construction.
func (g *Graph) Edges() [][2]Vertex {
	return slices.Clone(g.edges)
}

// Neighbors returns the vertices adjacent to v, or nil if v is unknown.
func (g *Graph) Neighbors(v Vertex) []Vertex {
	return slices.Clone(g.adjacent[v])
}

// HasVertex reports whether v is a vertex of the graph.
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.index[v]
	return ok
}

// HasEdge reports whether u and v are adjacent, in either direction.
func (g *Graph) HasEdge(u, v Vertex) bool {
	return slices.Contains(g.adjacent[u], v)
}

// Index returns the position of v in vertex insertion order.
func (g *Graph) Index(v Vertex) (int, bool) {
	i, ok := g.index[v]
	return i, ok
}

// Facts emits the ground fact base for the graph: one vertex/1 fact per
// vertex, one edge/2 fact per undirected edge, and the symmetry rule
// making the edge relation undirected at the text level.
func (g *Graph) Facts() []asp.Statement {
	statements := make([]asp.Statement, 0, len(g.vertices)+len(g.edges)+1)
	for _, vertex := range g.vertices {
		statements = append(statements, asp.Fact{Head: asp.NewAtom("vertex", asp.Term(vertex))})
	}
	for _, edge := range g.edges {
		statements = append(statements, asp.Fact{Head: asp.NewAtom("edge", asp.Term(edge[0]), asp.Term(edge[1]))})
	}
	statements = append(statements, asp.Rule{
		Head: asp.NewAtom("edge", "U", "V"),
		Body: []asp.Literal{asp.Pos(asp.NewAtom("edge", "V", "U"))},
	})
	return statements
}
