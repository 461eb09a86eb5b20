package search

import (
	"runtime"
	"sync"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// InvalidScore is reported for candidates placed outside the time grid. It
// is far above any reachable penalty, so invalid candidates never win a
// reduction even when the valid flag is ignored.
const InvalidScore = 1_000_000_000

// BatchEvaluator scores many complete placement vectors at once with the
// same rules as scoreTimetable. It replaces only the scoring step of a
// search: hard-constraint checking stays with timetableState on the caller's
// side.
type BatchEvaluator interface {
	// EvaluateBatch returns one (valid, score) pair per candidate. A
	// candidate with any assigned placement outside the day/slot grid is
	// invalid and scored InvalidScore.
	EvaluateBatch(inst *model.ProblemInstance, batch [][]model.Placement) (valid []bool, scores []int, err error)
}

// cpuBatchEvaluator spreads candidates over worker goroutines. Scoring a
// candidate is independent of every other candidate, so the split is a plain
// chunked fan-out.
type cpuBatchEvaluator struct {
	workers int
}

func NewCPUBatchEvaluator() BatchEvaluator {
	return &cpuBatchEvaluator{workers: runtime.NumCPU()}
}

func (e *cpuBatchEvaluator) EvaluateBatch(inst *model.ProblemInstance, batch [][]model.Placement) ([]bool, []int, error) {
	valid := make([]bool, len(batch))
	scores := make([]int, len(batch))
	if len(batch) == 0 {
		return valid, scores, nil
	}

	workers := max(min(e.workers, len(batch)), 1)
	chunk := (len(batch) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(batch); start += chunk {
		start := start
		end := min(start+chunk, len(batch))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				valid[i], scores[i] = evaluateCandidate(inst, batch[i])
			}
		}()
	}
	wg.Wait()
	return valid, scores, nil
}

func evaluateCandidate(inst *model.ProblemInstance, placements []model.Placement) (bool, int) {
	for _, p := range placements {
		if p.ActivityId < 0 {
			continue
		}
		if p.Day < 0 || p.Day >= model.Days || p.Slot < 0 || p.Slot >= model.SlotsPerDay {
			return false, InvalidScore
		}
	}
	return true, scoreTimetable(inst, placements)
}
