package search

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// multiStartSolver runs several independent parallel searches, each over a
// copy of the instance with a reshuffled activity list, and reduces to the
// globally best solution. Workers hand results to the reducer in the flat
// wire format; the reducer decodes and rescores them, so the reduction only
// ever compares scores it computed itself.
type multiStartSolver struct {
	starts          int
	threadsPerStart int
	maxSolutions    int
	seed            int64
}

func NewMultiStartSolver(starts, threadsPerStart, maxSolutions int, seed int64) Solver {
	return &multiStartSolver{
		starts:          starts,
		threadsPerStart: threadsPerStart,
		maxSolutions:    maxSolutions,
		seed:            seed,
	}
}

type startResult struct {
	flat []int
	err  error
}

func (s *multiStartSolver) Solve(inst *model.ProblemInstance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem instance: %v", err)
	}

	starts := max(s.starts, 1)

	// Buffered to the number of starts so every worker can deliver its
	// result even when the reducer has already returned.
	results := make(chan startResult, starts)
	var wg sync.WaitGroup
	for k := 0; k < starts; k++ {
		k := k
		wg.Add(1)
		go func() {
			defer wg.Done()
			solver := NewParallelSolver(s.maxSolutions, s.threadsPerStart)
			sol, err := solver.Solve(s.shuffled(inst, int64(k)))
			switch {
			case err != nil:
				results <- startResult{err: err}
			case sol == nil:
				results <- startResult{}
			default:
				results <- startResult{flat: EncodeSolution(sol)}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var best *Solution
	bestScore := math.MaxInt
	for res := range results {
		if res.err != nil {
			return nil, res.err
		}
		if res.flat == nil {
			continue
		}
		sol, err := DecodeSolution(inst, res.flat)
		if err != nil {
			return nil, fmt.Errorf("corrupt worker solution: %v", err)
		}
		if sol.Score < bestScore {
			best = sol
			bestScore = sol.Score
		}
	}
	return best, nil
}

// shuffled copies the instance with its activity order permuted by this
// start's seed. Ids are untouched, so placements from different starts index
// the same activities; the heuristic sort is stable, so the permutation
// decides the visit order inside each tie class.
func (s *multiStartSolver) shuffled(inst *model.ProblemInstance, start int64) *model.ProblemInstance {
	local := *inst
	local.Activities = slices.Clone(inst.Activities)
	rng := rand.New(rand.NewSource(s.seed + start))
	rng.Shuffle(len(local.Activities), func(i, j int) {
		local.Activities[i], local.Activities[j] = local.Activities[j], local.Activities[i]
	})
	return &local
}
