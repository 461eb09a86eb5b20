package search

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// frontierSolver is the coarse-grained parallel strategy: it expands the
// search tree sequentially down to a fixed depth, collects the surviving
// partial timetables into a frontier, and hands them to a pool of workers
// that finish each one with plain depth-first search. Unlike the splitting
// solver it never spawns below the frontier, so its goroutine count is
// bounded by the pool size no matter how bushy the tree is.
type frontierSolver struct {
	maxSolutions  int
	threads       int
	frontierDepth int
}

func NewFrontierSolver(maxSolutions, threads, frontierDepth int) Solver {
	return &frontierSolver{maxSolutions: maxSolutions, threads: threads, frontierDepth: frontierDepth}
}

func (s *frontierSolver) Solve(inst *model.ProblemInstance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem instance: %v", err)
	}

	run := &frontierRun{
		inst:         inst,
		ordered:      orderActivities(inst.Activities),
		maxSolutions: s.maxSolutions,
		bestScore:    math.MaxInt,
	}

	depth := min(max(s.frontierDepth, 1), len(run.ordered))
	frontier := run.expand(newTimetableState(inst), unassignedPlacements(len(inst.Activities)), 0, depth)

	if len(frontier) > 0 {
		tasks := make(chan frontierEntry)
		var wg sync.WaitGroup
		workers := max(s.threads, 1)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for entry := range tasks {
					run.complete(entry.state, entry.placements, entry.depth)
				}
			}()
		}
		for _, entry := range frontier {
			tasks <- entry
		}
		close(tasks)
		wg.Wait()
	}

	// Timetables completed during expansion (instances smaller than the
	// frontier depth) were recorded by expand itself.
	if run.best == nil {
		return nil, nil
	}
	return &Solution{Placements: run.best, Score: run.bestScore}, nil
}

// frontierEntry is one partial timetable awaiting completion: a private
// constraint-state clone, its placements vector and the next depth to assign.
type frontierEntry struct {
	state      *timetableState
	placements []model.Placement
	depth      int
}

type frontierRun struct {
	inst         *model.ProblemInstance
	ordered      []model.Activity
	maxSolutions int

	done atomic.Bool

	mu             sync.Mutex
	solutionsFound int
	best           []model.Placement
	bestScore      int
}

// expand walks the tree sequentially down to targetDepth and clones every
// surviving partial assignment into the frontier. A dead branch contributes
// nothing; a branch that bottoms out before the target depth is recorded as a
// complete timetable right away.
func (r *frontierRun) expand(state *timetableState, placements []model.Placement, depth, targetDepth int) []frontierEntry {
	if r.done.Load() {
		return nil
	}
	if depth == len(r.ordered) {
		r.record(state, placements)
		return nil
	}
	if depth == targetDepth {
		return []frontierEntry{{state: state.clone(), placements: slices.Clone(placements), depth: depth}}
	}

	var frontier []frontierEntry
	act := r.ordered[depth]
	for day := 0; day < model.Days; day++ {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			for roomIndex, room := range r.inst.Rooms {
				if room.Type != act.Type {
					continue
				}
				if !state.place(act, day, slot, roomIndex) {
					continue
				}
				placements[act.Id] = model.Placement{ActivityId: act.Id, Day: day, Slot: slot, RoomIndex: roomIndex}
				frontier = append(frontier, r.expand(state, placements, depth+1, targetDepth)...)
				state.undo(act, day, slot, roomIndex)
				placements[act.Id] = model.Placement{ActivityId: model.UnassignedActivity}
			}
		}
	}
	return frontier
}

// complete finishes one frontier entry with single-goroutine depth-first
// search. The entry owns its state and placements, so only the best record is
// shared.
func (r *frontierRun) complete(state *timetableState, placements []model.Placement, depth int) {
	if r.done.Load() {
		return
	}
	if depth == len(r.ordered) {
		r.record(state, placements)
		return
	}

	act := r.ordered[depth]
	for day := 0; day < model.Days; day++ {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			for roomIndex, room := range r.inst.Rooms {
				if room.Type != act.Type {
					continue
				}
				if !state.place(act, day, slot, roomIndex) {
					continue
				}
				placements[act.Id] = model.Placement{ActivityId: act.Id, Day: day, Slot: slot, RoomIndex: roomIndex}
				r.complete(state, placements, depth+1)
				state.undo(act, day, slot, roomIndex)
				placements[act.Id] = model.Placement{ActivityId: model.UnassignedActivity}
			}
		}
	}
}

func (r *frontierRun) record(state *timetableState, placements []model.Placement) {
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
}
