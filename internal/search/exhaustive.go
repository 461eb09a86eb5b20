package search

import (
	"fmt"
	"math"
	"slices"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// exhaustiveSolver enumerates complete hard-feasible assignments and defers
// scoring to a BatchEvaluator, flushing candidates in batches. maxLeaves
// caps how many complete assignments are enumerated (0 = unlimited), which
// keeps the variant usable beyond toy instances.
type exhaustiveSolver struct {
	eval      BatchEvaluator
	batchSize int
	maxLeaves int
}

func NewExhaustiveSolver(eval BatchEvaluator, batchSize, maxLeaves int) Solver {
	return &exhaustiveSolver{eval: eval, batchSize: batchSize, maxLeaves: maxLeaves}
}

func (s *exhaustiveSolver) Solve(inst *model.ProblemInstance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem instance: %v", err)
	}

	run := &exhaustiveRun{
		inst:       inst,
		state:      newTimetableState(inst),
		ordered:    orderActivities(inst.Activities),
		placements: unassignedPlacements(len(inst.Activities)),
		eval:       s.eval,
		batchSize:  max(s.batchSize, 1),
		maxLeaves:  s.maxLeaves,
		bestScore:  math.MaxInt,
	}
	run.enumerate(0)
	run.flush()

	if run.err != nil {
		return nil, run.err
	}
	if run.best == nil {
		return nil, nil
	}
	return &Solution{Placements: run.best, Score: run.bestScore}, nil
}

type exhaustiveRun struct {
	inst       *model.ProblemInstance
	state      *timetableState
	ordered    []model.Activity
	placements []model.Placement

	eval      BatchEvaluator
	batchSize int
	maxLeaves int

	batch     [][]model.Placement
	leaves    int
	err       error
	best      []model.Placement
	bestScore int
}

func (r *exhaustiveRun) enumerate(depth int) {
	if r.err != nil {
		return
	}
	if r.maxLeaves > 0 && r.leaves >= r.maxLeaves {
		return
	}
	if depth == len(r.ordered) {
		if !r.state.finalWorkloadBounds() {
			return
		}
		r.batch = append(r.batch, slices.Clone(r.placements))
		r.leaves++
		if len(r.batch) >= r.batchSize {
			r.flush()
		}
		return
	}

	act := r.ordered[depth]
	for day := 0; day < model.Days; day++ {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			for roomIndex, room := range r.inst.Rooms {
				if room.Type != act.Type {
					continue
				}
				if !r.state.place(act, day, slot, roomIndex) {
					continue
				}
				r.placements[act.Id] = model.Placement{ActivityId: act.Id, Day: day, Slot: slot, RoomIndex: roomIndex}
				r.enumerate(depth + 1)
				r.state.undo(act, day, slot, roomIndex)
				r.placements[act.Id] = model.Placement{ActivityId: model.UnassignedActivity}
			}
		}
	}
}

// flush scores the pending batch and folds it into the running best.
func (r *exhaustiveRun) flush() {
	if r.err != nil || len(r.batch) == 0 {
		return
	}
	valid, scores, err := r.eval.EvaluateBatch(r.inst, r.batch)
	if err != nil {
		r.err = fmt.Errorf("batch evaluation failed: %v", err)
		return
	}
	for i := range r.batch {
		if valid[i] && scores[i] < r.bestScore {
			r.best = r.batch[i]
			r.bestScore = scores[i]
		}
	}
	r.batch = r.batch[:0]
}
