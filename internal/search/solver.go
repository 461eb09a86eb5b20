// Package search implements the timetabling engine: an incremental
// hard-constraint occupancy state, a soft-constraint scoring function and a
// family of solver strategies over the same search tree (sequential
// backtracking, parallel backtracking with dynamic thread splitting, a
// frontier worker pool, multi-start, exhaustive enumeration with batch
// scoring and a two-phase variant that postpones room assignment).
package search

import (
	"slices"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// Solution is a complete, hard-constraint-feasible assignment: one placement
// per activity, indexed by activity id, plus its soft-constraint score
// (lower is better).
type Solution struct {
	Placements []model.Placement
	Score      int
}

type Solver interface {
	// Solve explores placements for every activity of the instance. A nil
	// solution with a nil error means no feasible timetable exists within
	// the solver's budget; errors are reserved for invalid instances and
	// internal faults.
	Solve(inst *model.ProblemInstance) (*Solution, error)
}

// orderActivities computes the heuristic visit order: courses first, then
// more-constrained activities (more attending groups) earlier. The sort is
// stable so a caller-shuffled input decides the order inside each tie class;
// the multi-start solver relies on this.
func orderActivities(activities []model.Activity) []model.Activity {
	ordered := slices.Clone(activities)
	slices.SortStableFunc(ordered, func(a, b model.Activity) int {
		if a.Type != b.Type {
			if a.Type == model.Course {
				return -1
			}
			if b.Type == model.Course {
				return 1
			}
			return 0
		}
		return len(b.GroupIds) - len(a.GroupIds)
	})
	return ordered
}

// activitiesById indexes activities by id so placement vectors (which are
// id-indexed) resolve to the right activity even when the instance slice has
// been reordered. Validate guarantees ids are dense.
func activitiesById(inst *model.ProblemInstance) []model.Activity {
	byId := make([]model.Activity, len(inst.Activities))
	for _, act := range inst.Activities {
		if act.Id >= 0 && act.Id < len(byId) {
			byId[act.Id] = act
		}
	}
	return byId
}

// unassignedPlacements allocates one placement entry per activity id, all
// marked unassigned.
func unassignedPlacements(count int) []model.Placement {
	placements := make([]model.Placement, count)
	for i := range placements {
		placements[i] = model.Placement{ActivityId: model.UnassignedActivity}
	}
	return placements
}
