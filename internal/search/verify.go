package search

import (
	"github.com/limaJavier/timetabling-csp/internal/model"
)

// VerifySolution replays a solution through a fresh constraint state and
// reports whether every hard constraint holds: a complete placement per
// activity, no double bookings, feasible travel between adjacent slots and
// final professor workloads within bounds.
func VerifySolution(inst *model.ProblemInstance, sol *Solution) bool {
	if sol == nil || len(sol.Placements) != len(inst.Activities) {
		return false
	}

	byId := activitiesById(inst)
	state := newTimetableState(inst)
	for i, p := range sol.Placements {
		if p.ActivityId != i {
			return false
		}
		if !state.place(byId[i], p.Day, p.Slot, p.RoomIndex) {
			return false
		}
	}
	return state.finalWorkloadBounds()
}
