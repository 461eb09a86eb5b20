package search

import (
	"fmt"
	"math"
	"slices"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// sequentialSolver runs a single-goroutine depth-first search over the
// ordered activities, enumerating day, slot and room for each one. It keeps
// the best-scored of the first maxSolutions complete timetables it reaches
// and stops as soon as that budget is spent.
type sequentialSolver struct {
	maxSolutions int
}

func NewSequentialSolver(maxSolutions int) Solver {
	return &sequentialSolver{maxSolutions: maxSolutions}
}

func (s *sequentialSolver) Solve(inst *model.ProblemInstance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem instance: %v", err)
	}

	run := &sequentialRun{
		inst:         inst,
		state:        newTimetableState(inst),
		ordered:      orderActivities(inst.Activities),
		placements:   unassignedPlacements(len(inst.Activities)),
		maxSolutions: s.maxSolutions,
		bestScore:    math.MaxInt,
	}
	run.backtrack(0)

	if run.best == nil {
		return nil, nil
	}
	return &Solution{Placements: run.best, Score: run.bestScore}, nil
}

type sequentialRun struct {
	inst       *model.ProblemInstance
	state      *timetableState
	ordered    []model.Activity
	placements []model.Placement

	maxSolutions   int
	solutionsFound int
	best           []model.Placement
	bestScore      int
}

func (r *sequentialRun) backtrack(depth int) {
	if r.solutionsFound >= r.maxSolutions {
		return
	}
	if depth == len(r.ordered) {
		if !r.state.finalWorkloadBounds() {
			return
		}
		if score := scoreTimetable(r.inst, r.placements); score < r.bestScore {
			r.best = slices.Clone(r.placements)
			r.bestScore = score
		}
		r.solutionsFound++
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
				r.backtrack(depth + 1)
				r.state.undo(act, day, slot, roomIndex)
				r.placements[act.Id] = model.Placement{ActivityId: model.UnassignedActivity}
			}
		}
	}
}
