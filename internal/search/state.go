package search

import (
	"log"
	"slices"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/samber/lo"
)

const noActivity = model.UnassignedActivity

// Hard-constraint parameters. Every activity is a 2-hour session; the
// professor lower bound is only checkable once a timetable is complete.
const (
	hoursPerActivity = 2
	minProfHours     = 4
	maxProfHours     = 80
	maxTravelMinutes = 10
)

// slotGrid holds one resource's week: [day][slot] = occupying activity id or
// noActivity. Fixed-size arrays keep clones structural copies.
type slotGrid [model.Days][model.SlotsPerDay]int

// timetableState answers "can this activity go there right now" and tracks
// the occupancy committed along the current search path. It is the only
// mutable entity during search; parallel branches never share one instance,
// they work on clones.
type timetableState struct {
	inst *model.ProblemInstance

	roomGrid  []slotGrid // indexed by room position in inst.Rooms
	profGrid  []slotGrid // indexed by professor position in inst.Professors
	groupGrid []slotGrid // indexed by group position in inst.Groups
	profHours []int

	// Id-to-position lookups, immutable after construction and therefore
	// shared between clones.
	profIndex  map[int]int
	groupIndex map[int]int
}

func newTimetableState(inst *model.ProblemInstance) *timetableState {
	state := &timetableState{
		inst:       inst,
		roomGrid:   emptyGrids(len(inst.Rooms)),
		profGrid:   emptyGrids(len(inst.Professors)),
		groupGrid:  emptyGrids(len(inst.Groups)),
		profHours:  make([]int, len(inst.Professors)),
		profIndex:  make(map[int]int, len(inst.Professors)),
		groupIndex: make(map[int]int, len(inst.Groups)),
	}
	for i, prof := range inst.Professors {
		state.profIndex[prof.Id] = i
	}
	for i, group := range inst.Groups {
		state.groupIndex[group.Id] = i
	}
	return state
}

func emptyGrids(count int) []slotGrid {
	grids := make([]slotGrid, count)
	for i := range grids {
		for day := 0; day < model.Days; day++ {
			for slot := 0; slot < model.SlotsPerDay; slot++ {
				grids[i][day][slot] = noActivity
			}
		}
	}
	return grids
}

// clone deep-copies the mutable occupancy data. The instance pointer and the
// index maps are shared: both are read-only for the lifetime of the search.
func (s *timetableState) clone() *timetableState {
	return &timetableState{
		inst:       s.inst,
		roomGrid:   slices.Clone(s.roomGrid),
		profGrid:   slices.Clone(s.profGrid),
		groupGrid:  slices.Clone(s.groupGrid),
		profHours:  slices.Clone(s.profHours),
		profIndex:  s.profIndex,
		groupIndex: s.groupIndex,
	}
}

// place attempts to commit an activity at (day, slot, roomIndex). All checks
// run before any write except the workload counter, which is tentatively
// bumped and rolled back on failure, so a false return leaves the state
// unchanged. Returning false is normal control flow during search, not an
// error.
func (s *timetableState) place(act model.Activity, day, slot, roomIndex int) bool {
	if day < 0 || day >= model.Days || slot < 0 || slot >= model.SlotsPerDay {
		return false
	}
	if roomIndex < 0 || roomIndex >= len(s.inst.Rooms) {
		return false
	}
	pIdx, ok := s.profIndex[act.ProfId]
	if !ok {
		return false
	}

	if s.roomGrid[roomIndex][day][slot] != noActivity {
		return false
	}
	if !s.groupsFree(act, day, slot) {
		return false
	}
	if s.profGrid[pIdx][day][slot] != noActivity {
		return false
	}
	if !s.travelFeasible(act, day, slot, roomIndex) {
		return false
	}

	s.profHours[pIdx] += hoursPerActivity
	if s.profHours[pIdx] > maxProfHours {
		s.profHours[pIdx] -= hoursPerActivity
		return false
	}

	s.roomGrid[roomIndex][day][slot] = act.Id
	s.profGrid[pIdx][day][slot] = act.Id
	for _, groupId := range act.GroupIds {
		s.groupGrid[s.groupIndex[groupId]][day][slot] = act.Id
	}
	return true
}

// undo reverses a previously successful place with the same parameters. The
// backtracking discipline guarantees the pairing; a mismatch means occupancy
// is already corrupt, so it is treated as fatal.
func (s *timetableState) undo(act model.Activity, day, slot, roomIndex int) {
	pIdx, ok := s.profIndex[act.ProfId]
	if !ok || s.roomGrid[roomIndex][day][slot] != act.Id || s.profGrid[pIdx][day][slot] != act.Id {
		log.Panicf("undo without a matching placement: activity %d at day %d, slot %d, room %d", act.Id, day, slot, roomIndex)
	}

	s.profHours[pIdx] -= hoursPerActivity
	s.roomGrid[roomIndex][day][slot] = noActivity
	s.profGrid[pIdx][day][slot] = noActivity
	for _, groupId := range act.GroupIds {
		s.groupGrid[s.groupIndex[groupId]][day][slot] = noActivity
	}
}

// finalWorkloadBounds verifies every professor's accumulated hours once a
// complete assignment exists. The lower bound cannot be enforced during
// placement since a professor may still receive activities deeper in the
// search.
func (s *timetableState) finalWorkloadBounds() bool {
	return lo.EveryBy(s.profHours, func(hours int) bool {
		return hours >= minProfHours && hours <= maxProfHours
	})
}

func (s *timetableState) groupsFree(act model.Activity, day, slot int) bool {
	for _, groupId := range act.GroupIds {
		gIdx, ok := s.groupIndex[groupId]
		if !ok {
			return false
		}
		if s.groupGrid[gIdx][day][slot] != noActivity {
			return false
		}
	}
	return true
}

// travelFeasible checks the previous and next slot on the same day for the
// professor and every attending group: whoever has a neighboring activity
// must be able to move between the two buildings within maxTravelMinutes.
// The neighbor's building is resolved by scanning room occupancy for the
// neighboring activity id.
func (s *timetableState) travelFeasible(act model.Activity, day, slot, roomIndex int) bool {
	buildingIdx := s.roomBuilding(roomIndex)
	if buildingIdx < 0 {
		return false
	}

	pIdx, ok := s.profIndex[act.ProfId]
	if !ok {
		return false
	}
	if !s.entityTravelFeasible(&s.profGrid[pIdx], day, slot, buildingIdx) {
		return false
	}
	for _, groupId := range act.GroupIds {
		gIdx, ok := s.groupIndex[groupId]
		if !ok {
			return false
		}
		if !s.entityTravelFeasible(&s.groupGrid[gIdx], day, slot, buildingIdx) {
			return false
		}
	}
	return true
}

func (s *timetableState) entityTravelFeasible(grid *slotGrid, day, slot, buildingIdx int) bool {
	if slot > 0 {
		if neighborId := grid[day][slot-1]; neighborId != noActivity {
			for r := range s.roomGrid {
				if s.roomGrid[r][day][slot-1] == neighborId {
					prevBuilding := s.roomBuilding(r)
					if prevBuilding < 0 {
						return false
					}
					if s.inst.TravelTime[prevBuilding][buildingIdx] > maxTravelMinutes {
						return false
					}
					break
				}
			}
		}
	}
	if slot < model.SlotsPerDay-1 {
		if neighborId := grid[day][slot+1]; neighborId != noActivity {
			for r := range s.roomGrid {
				if s.roomGrid[r][day][slot+1] == neighborId {
					nextBuilding := s.roomBuilding(r)
					if nextBuilding < 0 {
						return false
					}
					if s.inst.TravelTime[buildingIdx][nextBuilding] > maxTravelMinutes {
						return false
					}
					break
				}
			}
		}
	}
	return true
}

// roomBuilding maps a room index to its building index; building ids index
// inst.Buildings directly in this model.
func (s *timetableState) roomBuilding(roomIndex int) int {
	if roomIndex < 0 || roomIndex >= len(s.inst.Rooms) {
		return -1
	}
	buildingId := s.inst.Rooms[roomIndex].BuildingId
	if buildingId < 0 || buildingId >= len(s.inst.Buildings) {
		return -1
	}
	return buildingId
}
