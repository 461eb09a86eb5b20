package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/limaJavier/timetabling-csp/internal/search"
)

type SolverType int

const (
	sequential SolverType = iota
	parallel
	frontier
	multistart
	exhaustive
	twophase
)

type ResultType int

const (
	solved ResultType = iota
	infeasible
)

var (
	solverTypes = map[SolverType]string{
		sequential: "sequential",
		parallel:   "parallel",
		frontier:   "frontier",
		multistart: "multistart",
		exhaustive: "exhaustive",
		twophase:   "twophase",
	}
	resultTypes = map[ResultType]string{
		solved:     "solved",
		infeasible: "infeasible",
	}
)

type CaseMetadata struct {
	Size       model.DemoSize
	Activities int
	Rooms      int
	Groups     int
	Professors int
}

type SolverConfig struct {
	Type    SolverType
	Threads int
	Starts  int
	Depth   int
	MaxSize model.DemoSize
}

type BenchmarkResult struct {
	Config   SolverConfig
	Case     CaseMetadata
	Duration int64
	Score    int
	Result   ResultType
}

func main() {
	sizes := getSizes()
	configs := getConfigs()
	results := make([]BenchmarkResult, 0, len(sizes)*len(configs))

	sizes = sizes[:4]

	for _, size := range sizes {
		inst := model.DemoInstance(size)
		metadata := CaseMetadata{
			Size:       size,
			Activities: len(inst.Activities),
			Rooms:      len(inst.Rooms),
			Groups:     len(inst.Groups),
			Professors: len(inst.Professors),
		}

		for _, config := range configs {
			if size > config.MaxSize {
				continue
			}
			fmt.Printf("Benchmarking size \"%v\" with solver \"%v\", threads \"%v\" and starts \"%v\"\n", size, solverTypes[config.Type], config.Threads, config.Starts)

			duration, score, result := measure(config, &inst)

			results = append(results, BenchmarkResult{
				Config:   config,
				Case:     metadata,
				Duration: duration,
				Score:    score,
				Result:   result,
			})
		}
	}

	toCsv(results)
}

func getSizes() []model.DemoSize {
	return []model.DemoSize{model.SizeXS, model.SizeM, model.SizeL, model.SizeXL, model.SizeXXL, model.SizeXXXL}
}

func getConfigs() []SolverConfig {
	return []SolverConfig{
		{
			Type:    sequential,
			MaxSize: model.SizeXXXL,
		},

		{
			Type:    parallel,
			Threads: 2,
			MaxSize: model.SizeXXXL,
		},

		{
			Type:    parallel,
			Threads: 4,
			MaxSize: model.SizeXXXL,
		},

		{
			Type:    parallel,
			Threads: 8,
			MaxSize: model.SizeXXXL,
		},

		{
			Type:    frontier,
			Threads: 4,
			Depth:   2,
			MaxSize: model.SizeXXXL,
		},

		{
			Type:    frontier,
			Threads: 8,
			Depth:   3,
			MaxSize: model.SizeXXL,
		},

		{
			Type:    multistart,
			Threads: 2,
			Starts:  4,
			MaxSize: model.SizeXXL,
		},

		{
			Type:    exhaustive,
			MaxSize: model.SizeM,
		},

		{
			Type:    twophase,
			MaxSize: model.SizeL,
		},
	}
}

func measure(config SolverConfig, inst *model.ProblemInstance) (duration int64, score int, result ResultType) {
	solver := buildSolver(config)

	start := time.Now()
	solution, err := solver.Solve(inst)
	if err != nil {
		log.Fatalf("an error occurred during the \"%v\" run: %v", solverTypes[config.Type], err)
	}
	duration = time.Since(start).Milliseconds()

	if solution == nil {
		return duration, 0, infeasible
	}
	return duration, solution.Score, solved
}

func buildSolver(config SolverConfig) search.Solver {
	switch config.Type {
	case sequential:
		return search.NewSequentialSolver(1)
	case parallel:
		return search.NewParallelSolver(1, config.Threads)
	case frontier:
		return search.NewFrontierSolver(1, config.Threads, config.Depth)
	case multistart:
		return search.NewMultiStartSolver(config.Starts, config.Threads, 1, 1234)
	case exhaustive:
		return search.NewExhaustiveSolver(search.NewCPUBatchEvaluator(), 1024, 50000)
	case twophase:
		return search.NewTwoPhaseSolver(1)
	}
	log.Panicf("unknown solver type: %v", config.Type)
	return nil
}

func toCsv(results []BenchmarkResult) {
	file, err := os.Create("benchmark_results.csv")
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Solver", "Threads", "Starts", "Size", "Activities", "Rooms", "Groups", "Professors", "Duration(ms)", "Score", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(csvRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func csvRecord(result BenchmarkResult) []string {
	return []string{
		solverTypes[result.Config.Type],
		fmt.Sprintf("%d", result.Config.Threads),
		fmt.Sprintf("%d", result.Config.Starts),
		result.Case.Size.String(),
		fmt.Sprintf("%d", result.Case.Activities),
		fmt.Sprintf("%d", result.Case.Rooms),
		fmt.Sprintf("%d", result.Case.Groups),
		fmt.Sprintf("%d", result.Case.Professors),
		fmt.Sprintf("%d", result.Duration),
		fmt.Sprintf("%d", result.Score),
		resultTypes[result.Result],
	}
}
