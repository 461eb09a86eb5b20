package search

import (
	"github.com/samber/lo"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

const (
	// lateSlotStart is the first slot of the day considered late (16:00).
	lateSlotStart = 4
	// maxBuildingsPerDay is the number of distinct buildings a group or
	// professor can visit in one day without penalty.
	maxBuildingsPerDay = 2
)

// occupancyGrid marks the slots one group or professor is busy in.
type occupancyGrid [model.Days][model.SlotsPerDay]bool

// buildingSets tracks, for one group or professor, which buildings it visits
// on each day.
type buildingSets [model.Days][]bool

// scoreTimetable computes the soft-constraint penalty of a placement vector
// (lower is better): one point per placement in a late slot, one point per
// idle slot strictly between the first and last occupied slot of a group's
// or professor's day, and one point per distinct building beyond
// maxBuildingsPerDay visited by a group or professor in one day.
//
// The function is pure and never mutates its arguments. Entries with a
// negative activity id are skipped; assigned entries must carry an in-range
// day and slot.
func scoreTimetable(inst *model.ProblemInstance, placements []model.Placement) int {
	score := 0
	for _, p := range placements {
		if p.ActivityId < 0 {
			continue
		}
		if p.Slot >= lateSlotStart {
			score++
		}
	}

	byId := activitiesById(inst)

	groupPos := make(map[int]int, len(inst.Groups))
	for i, group := range inst.Groups {
		groupPos[group.Id] = i
	}
	profPos := make(map[int]int, len(inst.Professors))
	for i, prof := range inst.Professors {
		profPos[prof.Id] = i
	}

	groupBusy := make([]occupancyGrid, len(inst.Groups))
	profBusy := make([]occupancyGrid, len(inst.Professors))
	groupBuildings := newBuildingSets(len(inst.Groups), len(inst.Buildings))
	profBuildings := newBuildingSets(len(inst.Professors), len(inst.Buildings))

	for _, p := range placements {
		if p.ActivityId < 0 || p.ActivityId >= len(byId) {
			continue
		}
		act := byId[p.ActivityId]

		building := -1
		if p.RoomIndex >= 0 && p.RoomIndex < len(inst.Rooms) {
			building = inst.Rooms[p.RoomIndex].BuildingId
		}

		if profIdx, ok := profPos[act.ProfId]; ok {
			profBusy[profIdx][p.Day][p.Slot] = true
			if building >= 0 && building < len(inst.Buildings) {
				profBuildings[profIdx][p.Day][building] = true
			}
		}
		for _, groupId := range act.GroupIds {
			groupIdx, ok := groupPos[groupId]
			if !ok {
				continue
			}
			groupBusy[groupIdx][p.Day][p.Slot] = true
			if building >= 0 && building < len(inst.Buildings) {
				groupBuildings[groupIdx][p.Day][building] = true
			}
		}
	}

	for _, busy := range groupBusy {
		score += gapPenalty(busy)
	}
	for _, busy := range profBusy {
		score += gapPenalty(busy)
	}
	for _, visited := range groupBuildings {
		score += localityPenalty(visited)
	}
	for _, visited := range profBuildings {
		score += localityPenalty(visited)
	}
	return score
}

func newBuildingSets(entities, buildings int) []buildingSets {
	sets := make([]buildingSets, entities)
	for i := range sets {
		for day := 0; day < model.Days; day++ {
			sets[i][day] = make([]bool, buildings)
		}
	}
	return sets
}

// gapPenalty counts the unoccupied slots strictly inside one entity's busy
// window on each day. Days with at most one occupied slot contribute
// nothing.
func gapPenalty(busy occupancyGrid) int {
	total := 0
	for day := 0; day < model.Days; day++ {
		first, last := -1, -1
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			if busy[day][slot] {
				if first == -1 {
					first = slot
				}
				last = slot
			}
		}
		if first == -1 || first == last {
			continue
		}
		for slot := first; slot <= last; slot++ {
			if !busy[day][slot] {
				total++
			}
		}
	}
	return total
}

func localityPenalty(visited buildingSets) int {
	total := 0
	for day := 0; day < model.Days; day++ {
		distinct := lo.CountBy(visited[day], func(used bool) bool { return used })
		if distinct > maxBuildingsPerDay {
			total += distinct - maxBuildingsPerDay
		}
	}
	return total
}
