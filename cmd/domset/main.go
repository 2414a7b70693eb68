package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/graphsat/domset/pkg/domset"
	"github.com/graphsat/domset/pkg/graph"
	"github.com/graphsat/domset/pkg/solve"
)

var (
	validModes   = []string{"fixed", "minimum"}
	validSolvers = []string{"gophersat", "clingo"}
	solvers      = map[string]func() solve.Solver{
		"gophersat": solve.NewGophersatSolver,
		"clingo":    solve.NewClingoSolver,
	}
)

// Config carries the solve defaults of an optional YAML configuration file;
// command-line flags override it field by field.
type Config struct {
	Solver     string `yaml:"solver"`
	ClingoPath string `yaml:"clingoPath"`
	Models     int    `yaml:"models"`
	AllOptimal bool   `yaml:"allOptimal"`
}

func loadConfig(path string) Config {
	config := Config{Solver: "gophersat", AllOptimal: true}
	if path == "" {
		return config
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}
	return config
}

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the JSON graph instance")
	modePtr := flag.String("mode", "fixed", `Solving scenario. Allowed values are:
- "fixed" (enumerate the dominating sets of size exactly k) and
- "minimum" (enumerate minimum dominating sets), where "fixed" is the default`)
	kPtr := flag.Int("k", 0, "Exact dominating-set size for the \"fixed\" mode")
	solverPtr := flag.String("solver", "", "Solving engine to use. Allowed values are: \"gophersat\" (embedded) and \"clingo\" (external binary)")
	modelsPtr := flag.Int("models", -1, "Maximum number of models to enumerate, 0 enumerates all of them")
	allOptimalPtr := flag.Bool("all-optimal", false, "Report every optimal model of the \"minimum\" mode instead of the first one")
	showProgramPtr := flag.Bool("show-program", false, "Print the logic program before solving")
	configPtr := flag.String("config", "", "Path to an optional YAML solve configuration")
	flag.Parse()

	config := loadConfig(*configPtr)
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["solver"] {
		config.Solver = strings.ToLower(*solverPtr)
	}
	if set["models"] {
		config.Models = *modelsPtr
	}
	if set["all-optimal"] {
		config.AllOptimal = *allOptimalPtr
	}
	if config.ClingoPath != "" {
		solve.ClingoPath = config.ClingoPath
	}
	mode := strings.ToLower(*modePtr)

	// Validate arguments
	if !slices.Contains(validModes, mode) {
		log.Fatalf("%v is not a valid mode", mode)
	} else if !slices.Contains(validSolvers, config.Solver) {
		log.Fatalf("%v is not a valid solver", config.Solver)
	} else if *filePtr == "" {
		log.Fatal("an instance file must be specified")
	} else if config.Models < 0 {
		log.Fatalf("the model cap must be non-negative: %v", config.Models)
	}

	// Extract the instance
	instance, err := graph.InstanceFromJSON(*filePtr)
	if err != nil {
		log.Fatalf("cannot parse instance file: %v", err)
	}
	g, err := instance.Graph()
	if err != nil {
		log.Fatalf("invalid graph instance: %v", err)
	}

	// Initialize the engine
	solver := solvers[config.Solver]()
	options := solve.Options{MaxModels: config.Models, AllOptimal: config.AllOptimal}

	if *showProgramPtr {
		if mode == "fixed" {
			fmt.Print(domset.FixedK(g, *kPtr).Program.String())
		} else {
			fmt.Print(domset.Minimum(g).Program.String())
		}
		fmt.Println()
	}

	// Solve
	var models []domset.Model
	if mode == "fixed" {
		models, err = domset.EnumerateFixedK(solver, g, *kPtr, options)
	} else {
		models, err = domset.EnumerateMinimum(solver, g, options)
	}
	if err != nil {
		log.Fatalf("an error occurred during solving: %v", err)
	} else if models == nil {
		fmt.Println(solve.Unsat)
		os.Exit(20)
	}

	// Verify model correctness before reporting
	for _, model := range models {
		if !domset.Verify(g, model.Chosen) {
			log.Fatalf("verification failed for model %v", domset.FormatModel(model))
		}
	}

	fmt.Println(solve.Sat)
	fmt.Print(domset.FormatModels(models))
	if mode == "minimum" && len(models) > 0 {
		fmt.Printf("Minimum dominating-set size: %v\n", models[0].Size)
	}
	os.Exit(10)
}
