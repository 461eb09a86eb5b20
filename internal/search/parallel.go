package search

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// parallelSolver explores the same tree as the sequential solver but divides
// a fixed thread budget across feasible branches at every split point. Each
// branch owns a private clone of the constraint state and the placements
// vector; the only shared mutable data are the best-solution record and
// solution counter (one mutex) and the early-exit flag (atomic).
type parallelSolver struct {
	maxSolutions int
	threads      int
}

func NewParallelSolver(maxSolutions, threads int) Solver {
	return &parallelSolver{maxSolutions: maxSolutions, threads: threads}
}

func (s *parallelSolver) Solve(inst *model.ProblemInstance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem instance: %v", err)
	}

	run := &parallelRun{
		inst:         inst,
		ordered:      orderActivities(inst.Activities),
		maxSolutions: s.maxSolutions,
		bestScore:    math.MaxInt,
	}
	run.dfs(newTimetableState(inst), unassignedPlacements(len(inst.Activities)), 0, max(s.threads, 1))

	// Every spawned branch has been joined, so best is safe to read.
	if run.best == nil {
		return nil, nil
	}
	return &Solution{Placements: run.best, Score: run.bestScore}, nil
}

type parallelRun struct {
	inst         *model.ProblemInstance
	ordered      []model.Activity
	maxSolutions int

	done atomic.Bool

	mu             sync.Mutex
	solutionsFound int
	best           []model.Placement
	bestScore      int
}

// branchChoice is one feasible (day, slot, room) candidate at a split point.
type branchChoice struct {
	day, slot, roomIndex int
}

// dfs explores the subtree below depth with threadsLeft threads available.
// Cancellation is cooperative: the flag is checked on entry and before every
// branch, so running branches stop at their next check rather than being
// preempted.
func (r *parallelRun) dfs(state *timetableState, placements []model.Placement, depth, threadsLeft int) {
	if r.done.Load() {
		return
	}
	if depth == len(r.ordered) {
		if !state.finalWorkloadBounds() {
			return
		}
		score := scoreTimetable(r.inst, placements)

		r.mu.Lock()
		if score < r.bestScore {
			r.best = slices.Clone(placements)
			r.bestScore = score
		}
		r.solutionsFound++
		if r.solutionsFound >= r.maxSolutions {
			r.done.Store(true)
		}
		r.mu.Unlock()
		return
	}

	act := r.ordered[depth]
	choices := r.feasibleChoices(state, act)

	if threadsLeft <= 1 || len(choices) <= 1 {
		for _, c := range choices {
			if r.done.Load() {
				return
			}
			if !state.place(act, c.day, c.slot, c.roomIndex) {
				continue
			}
			placements[act.Id] = model.Placement{ActivityId: act.Id, Day: c.day, Slot: c.slot, RoomIndex: c.roomIndex}
			r.dfs(state, placements, depth+1, 1)
			state.undo(act, c.day, c.slot, c.roomIndex)
			placements[act.Id] = model.Placement{ActivityId: model.UnassignedActivity}
		}
		return
	}

	// Split the budget as evenly as possible: the first threadsLeft %
	// len(choices) branches get one extra thread.
	base := threadsLeft / len(choices)
	extra := threadsLeft % len(choices)

	var wg sync.WaitGroup
	for i, c := range choices {
		if r.done.Load() {
			break
		}
		budget := base
		if i < extra {
			budget++
		}

		branchState := state.clone()
		if !branchState.place(act, c.day, c.slot, c.roomIndex) {
			continue
		}
		branchPlacements := slices.Clone(placements)
		branchPlacements[act.Id] = model.Placement{ActivityId: act.Id, Day: c.day, Slot: c.slot, RoomIndex: c.roomIndex}

		wg.Add(1)
		go func() {
			defer wg.Done()
			r.dfs(branchState, branchPlacements, depth+1, budget)
		}()
	}
	wg.Wait()
}

// feasibleChoices probes every type-compatible (day, slot, room) triple with
// place-then-undo, leaving the state unchanged.
func (r *parallelRun) feasibleChoices(state *timetableState, act model.Activity) []branchChoice {
	var choices []branchChoice
	for day := 0; day < model.Days; day++ {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			for roomIndex, room := range r.inst.Rooms {
				if room.Type != act.Type {
					continue
				}
				if state.place(act, day, slot, roomIndex) {
					state.undo(act, day, slot, roomIndex)
					choices = append(choices, branchChoice{day: day, slot: slot, roomIndex: roomIndex})
				}
			}
		}
	}
	return choices
}
