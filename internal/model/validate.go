package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Validate checks the static references of an instance before any search
// touches it: activity ids must form the dense range 0..N-1 (placement arrays
// are indexed by activity id), every id reference must resolve, and the
// travel matrix must have one row and column per building. Infeasibility of
// the timetable itself is not an error and is left to the solvers.
func (inst *ProblemInstance) Validate() error {
	if len(inst.TravelTime) != len(inst.Buildings) {
		return fmt.Errorf("travel matrix has %d rows for %d buildings", len(inst.TravelTime), len(inst.Buildings))
	}
	for i, row := range inst.TravelTime {
		if len(row) != len(inst.Buildings) {
			return fmt.Errorf("travel matrix row %d has %d columns for %d buildings", i, len(row), len(inst.Buildings))
		}
		for j, minutes := range row {
			if minutes < 0 {
				return fmt.Errorf("travel time between buildings %d and %d is negative: %d", i, j, minutes)
			}
		}
	}

	for _, room := range inst.Rooms {
		if room.BuildingId < 0 || room.BuildingId >= len(inst.Buildings) {
			return fmt.Errorf("room %q references building %d: only %d buildings exist", room.Name, room.BuildingId, len(inst.Buildings))
		}
		if _, ok := activityTypeNames[room.Type]; !ok {
			return fmt.Errorf("room %q has unknown type %d", room.Name, room.Type)
		}
	}

	hasProfessor := func(id int) bool {
		return lo.SomeBy(inst.Professors, func(prof Professor) bool { return prof.Id == id })
	}
	hasSubject := func(id int) bool {
		return lo.SomeBy(inst.Subjects, func(subject Subject) bool { return subject.Id == id })
	}
	hasGroup := func(id int) bool {
		return lo.SomeBy(inst.Groups, func(group Group) bool { return group.Id == id })
	}

	seen := make([]bool, len(inst.Activities))
	for _, act := range inst.Activities {
		if act.Id < 0 || act.Id >= len(inst.Activities) {
			return fmt.Errorf("activity id %d out of range: ids must cover 0..%d", act.Id, len(inst.Activities)-1)
		}
		if seen[act.Id] {
			return fmt.Errorf("duplicate activity id %d", act.Id)
		}
		seen[act.Id] = true

		if _, ok := activityTypeNames[act.Type]; !ok {
			return fmt.Errorf("activity %d has unknown type %d", act.Id, act.Type)
		}
		if !hasProfessor(act.ProfId) {
			return fmt.Errorf("activity %d references unknown professor %d", act.Id, act.ProfId)
		}
		if !hasSubject(act.SubjectId) {
			return fmt.Errorf("activity %d references unknown subject %d", act.Id, act.SubjectId)
		}
		if len(act.GroupIds) == 0 {
			return fmt.Errorf("activity %d has no attending groups", act.Id)
		}
		for _, groupId := range act.GroupIds {
			if !hasGroup(groupId) {
				return fmt.Errorf("activity %d references unknown group %d", act.Id, groupId)
			}
		}
	}
	return nil
}
