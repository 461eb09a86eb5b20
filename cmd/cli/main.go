package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/timetabling-csp/internal/format"
	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/limaJavier/timetabling-csp/internal/search"

	"github.com/samber/lo"
)

var (
	threads       int
	starts        int
	seed          int64
	maxSolutions  int
	batchSize     int
	maxLeaves     int
	frontierDepth int

	validSolvers = []string{"sequential", "parallel", "frontier", "multistart", "exhaustive", "twophase"}
	solvers      = map[string]func() search.Solver{
		"sequential": func() search.Solver { return search.NewSequentialSolver(maxSolutions) },
		"parallel":   func() search.Solver { return search.NewParallelSolver(maxSolutions, threads) },
		"frontier":   func() search.Solver { return search.NewFrontierSolver(maxSolutions, threads, frontierDepth) },
		"multistart": func() search.Solver { return search.NewMultiStartSolver(starts, threads, maxSolutions, seed) },
		"exhaustive": func() search.Solver {
			return search.NewExhaustiveSolver(search.NewCPUBatchEvaluator(), batchSize, maxLeaves)
		},
		"twophase": func() search.Solver { return search.NewTwoPhaseSolver(maxSolutions) },
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "sequential", "Search strategy to use. Allowed values are: \"sequential\", \"parallel\", \"frontier\", \"multistart\", \"exhaustive\", \"twophase\", where \"sequential\" is the default")
	filePathPtr := flag.String("file", "", "Path to the input JSON file; mutually exclusive with -size")
	sizePtr := flag.String("size", "", "Built-in demo instance to solve. Allowed values are: \"xs\", \"s\", \"m\", \"l\", \"xl\", \"xxl\", \"xxxl\"")
	threadsPtr := flag.Int("threads", 4, "Thread budget for the parallel and frontier solvers; threads per start for multistart")
	startsPtr := flag.Int("starts", 4, "Number of independent shuffled searches run by the multistart solver")
	seedPtr := flag.Int64("seed", 1234, "Base seed for the multistart activity shuffles")
	maxSolutionsPtr := flag.Int("max-solutions", 1, "Stop after this many complete timetables have been found; the best-scored one is kept")
	batchPtr := flag.Int("batch", 1024, "Batch size used by the exhaustive solver's scorer")
	leavesPtr := flag.Int("leaves", 100000, "Cap on complete assignments enumerated by the exhaustive solver; 0 means unlimited")
	depthPtr := flag.Int("depth", 2, "Expansion depth used by the frontier solver")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	rawPtr := flag.Bool("raw", false, "Write the solution as a flat integer array (4 ints per placement) instead of per-group JSON")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	sizeStr := strings.ToLower(*sizePtr)
	threads = *threadsPtr
	starts = *startsPtr
	seed = *seedPtr
	maxSolutions = *maxSolutionsPtr
	batchSize = *batchPtr
	maxLeaves = *leavesPtr
	frontierDepth = *depthPtr
	outFile := *outFilePathPtr
	raw := *rawPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" && sizeStr == "" {
		log.Fatal("an input file or a demo size must be specified")
	} else if filePath != "" && sizeStr != "" {
		log.Fatal("-file and -size are mutually exclusive")
	} else if threads < 1 || starts < 1 || maxSolutions < 1 || batchSize < 1 || frontierDepth < 1 {
		log.Fatal("-threads, -starts, -max-solutions, -batch and -depth must all be positive")
	} else if maxLeaves < 0 {
		log.Fatalf("-leaves must not be negative: %v", maxLeaves)
	}

	// Extract input
	var inst model.ProblemInstance
	if filePath != "" {
		var err error
		inst, err = model.InputFromJson(filePath)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
	} else {
		size, err := model.ParseDemoSize(sizeStr)
		if err != nil {
			log.Fatalf("cannot select demo instance: %v", err)
		}
		inst = model.DemoInstance(size)
	}

	// Build timetable
	solver := solvers[solverStr]()

	start := time.Now()
	solution, err := solver.Solve(&inst)
	if err != nil {
		log.Fatalf("an error occurred during timetable construction: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("Solver: %v\n", solverStr)
	fmt.Printf("Activities: %v\n", len(inst.Activities))
	fmt.Printf("Time: %v ms\n", elapsed.Milliseconds())

	if solution == nil {
		fmt.Println("No valid timetable found.")
		os.Exit(20)
	}
	fmt.Printf("Score: %v\n", solution.Score)

	// Verify timetable correctness
	if !search.VerifySolution(&inst, solution) {
		fmt.Println("Verification failed.")
		os.Exit(15)
	}

	// Build output from solution
	var output []byte
	if raw {
		flat := search.EncodeSolution(solution)
		output = []byte(strings.Join(lo.Map(flat, func(v int, _ int) string { return strconv.Itoa(v) }), " "))
	} else {
		output, err = json.Marshal(format.GroupTimetables(&inst, solution.Placements))
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(output))
	} else {
		err := os.WriteFile(outFile, output, 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	os.Exit(10)
}
