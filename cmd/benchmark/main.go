package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/graphsat/domset/pkg/domset"
	"github.com/graphsat/domset/pkg/graph"
	"github.com/graphsat/domset/pkg/solve"
)

type instance struct {
	name  string
	graph *graph.Graph
}

func vertex(i int) graph.Vertex {
	return graph.Vertex("v" + strconv.Itoa(i))
}

func build(name string, n int, edges [][2]graph.Vertex) instance {
	vertices := make([]graph.Vertex, n)
	for i := range n {
		vertices[i] = vertex(i + 1)
	}
	g, err := graph.New(vertices, edges)
	if err != nil {
		log.Fatalf("cannot build benchmark instance %v: %v", name, err)
	}
	return instance{name: name, graph: g}
}

func pathInstance(n int) instance {
	var edges [][2]graph.Vertex
	for i := 1; i < n; i++ {
		edges = append(edges, [2]graph.Vertex{vertex(i), vertex(i + 1)})
	}
	return build(fmt.Sprintf("path-%d", n), n, edges)
}

func cycleInstance(n int) instance {
	var edges [][2]graph.Vertex
	for i := 1; i < n; i++ {
		edges = append(edges, [2]graph.Vertex{vertex(i), vertex(i + 1)})
	}
	edges = append(edges, [2]graph.Vertex{vertex(n), vertex(1)})
	return build(fmt.Sprintf("cycle-%d", n), n, edges)
}

func gridInstance(rows, cols int) instance {
	at := func(r, c int) graph.Vertex { return vertex(r*cols + c + 1) }
	var edges [][2]graph.Vertex
	for r := range rows {
		for c := range cols {
			if c+1 < cols {
				edges = append(edges, [2]graph.Vertex{at(r, c), at(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, [2]graph.Vertex{at(r, c), at(r+1, c)})
			}
		}
	}
	return build(fmt.Sprintf("grid-%dx%d", rows, cols), rows*cols, edges)
}

func randomInstance(n int, probability float64, seed uint64) instance {
	random := rand.New(rand.NewPCG(seed, seed))
	var edges [][2]graph.Vertex
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if random.Float64() < probability {
				edges = append(edges, [2]graph.Vertex{vertex(i), vertex(j)})
			}
		}
	}
	return build(fmt.Sprintf("random-%d", n), n, edges)
}

func main() {
	sizePtr := flag.Int("size", 12, "Number of vertices per generated instance")
	seedPtr := flag.Uint64("seed", 1, "Seed for the random instance")
	outPtr := flag.String("out", "", "Path of the CSV report; standard output when empty")
	flag.Parse()

	n := *sizePtr
	instances := []instance{
		pathInstance(n),
		cycleInstance(n),
		gridInstance(3, (n+2)/3),
		randomInstance(n, 0.3, *seedPtr),
	}

	backends := []struct {
		name   string
		solver solve.Solver
	}{
		{"gophersat", solve.NewGophersatSolver()},
	}
	if _, err := exec.LookPath(solve.ClingoPath); err == nil {
		backends = append(backends, struct {
			name   string
			solver solve.Solver
		}{"clingo", solve.NewClingoSolver()})
	}

	out := os.Stdout
	if *outPtr != "" {
		file, err := os.Create(*outPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	defer writer.Flush()
	if err := writer.Write([]string{"instance", "solver", "vertices", "edges", "minimum", "optimal models", "minimize ms", "enumerate ms"}); err != nil {
		log.Fatalf("cannot write CSV header: %v", err)
	}

	for _, inst := range instances {
		for _, backend := range backends {
			start := time.Now()
			first, err := domset.EnumerateMinimum(backend.solver, inst.graph, solve.Options{})
			if err != nil {
				log.Fatalf("minimization failed on %v with %v: %v", inst.name, backend.name, err)
			}
			minimizeMs := time.Since(start).Milliseconds()
			minimum := first[0].Size

			start = time.Now()
			all, err := domset.EnumerateMinimum(backend.solver, inst.graph, solve.Options{AllOptimal: true})
			if err != nil {
				log.Fatalf("optimum enumeration failed on %v with %v: %v", inst.name, backend.name, err)
			}
			enumerateMs := time.Since(start).Milliseconds()

			record := []string{
				inst.name,
				backend.name,
				strconv.Itoa(inst.graph.Order()),
				strconv.Itoa(len(inst.graph.Edges())),
				strconv.Itoa(minimum),
				strconv.Itoa(len(all)),
				strconv.FormatInt(minimizeMs, 10),
				strconv.FormatInt(enumerateMs, 10),
			}
			if err := writer.Write(record); err != nil {
				log.Fatalf("cannot write CSV record: %v", err)
			}
		}
	}
}
