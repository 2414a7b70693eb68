package domset

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/graphsat/domset/pkg/graph"
)

// FormatModel renders one model as a braced vertex set, e.g. "{v3, v7}".
func FormatModel(model Model) string {
	vertices := lo.Map(model.Chosen, func(vertex graph.Vertex, _ int) string { return string(vertex) })
	return "{" + strings.Join(vertices, ", ") + "}"
}

// FormatModels renders one model per line. Optimization results additionally
// carry their cardinality and the optimality verdict.
func FormatModels(models []Model) string {
	var builder strings.Builder
	for i, model := range models {
		fmt.Fprintf(&builder, "Answer %v: %v", i+1, FormatModel(model))
		if model.Optimal {
			fmt.Fprintf(&builder, " (size %v, optimum)", model.Size)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
