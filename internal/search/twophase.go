package search

import (
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

type unassignableError struct {
}

func (err unassignableError) Error() string {
	return "not every activity can be assigned a room"
}

// twoPhaseSolver first searches over (day, slot) pairs only, keeping a slot
// from taking more activities of a type than rooms of that type exist, then
// assigns concrete rooms per slot by maximum bipartite matching. Every
// candidate is replayed through the full constraint state before it counts,
// so returned solutions are always feasible; the relaxation can however miss
// room-sensitive (travel-constrained) solutions a direct search would find.
type twoPhaseSolver struct {
	maxSolutions int
}

func NewTwoPhaseSolver(maxSolutions int) Solver {
	return &twoPhaseSolver{maxSolutions: maxSolutions}
}

func (s *twoPhaseSolver) Solve(inst *model.ProblemInstance) (*Solution, error) {
	if err := inst.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem instance: %v", err)
	}

	run := newTwoPhaseRun(inst, s.maxSolutions)
	run.search(0)

	if run.err != nil {
		return nil, run.err
	}
	if run.best == nil {
		return nil, nil
	}
	return &Solution{Placements: run.best, Score: run.bestScore}, nil
}

type twoPhaseRun struct {
	inst    *model.ProblemInstance
	ordered []model.Activity
	byId    []model.Activity

	// Phase-1 occupancy: professors and groups exactly, rooms only as
	// per-slot buckets of placed activity ids.
	profBusy      []slotGrid
	groupBusy     []slotGrid
	profHours     []int
	buckets       [model.Days][model.SlotsPerDay][]int
	profIndex     map[int]int
	groupIndex    map[int]int
	roomIdxByType map[model.ActivityType][]int

	maxSolutions   int
	solutionsFound int
	err            error
	best           []model.Placement
	bestScore      int
}

func newTwoPhaseRun(inst *model.ProblemInstance, maxSolutions int) *twoPhaseRun {
	run := &twoPhaseRun{
		inst:          inst,
		ordered:       orderActivities(inst.Activities),
		byId:          activitiesById(inst),
		profBusy:      emptyGrids(len(inst.Professors)),
		groupBusy:     emptyGrids(len(inst.Groups)),
		profHours:     make([]int, len(inst.Professors)),
		profIndex:     make(map[int]int, len(inst.Professors)),
		groupIndex:    make(map[int]int, len(inst.Groups)),
		roomIdxByType: make(map[model.ActivityType][]int),
		maxSolutions:  maxSolutions,
		bestScore:     math.MaxInt,
	}
	for i, prof := range inst.Professors {
		run.profIndex[prof.Id] = i
	}
	for i, group := range inst.Groups {
		run.groupIndex[group.Id] = i
	}
	for i, room := range inst.Rooms {
		run.roomIdxByType[room.Type] = append(run.roomIdxByType[room.Type], i)
	}
	return run
}

func (r *twoPhaseRun) search(depth int) {
	if r.err != nil || r.solutionsFound >= r.maxSolutions {
		return
	}
	if depth == len(r.ordered) {
		r.completeCandidate()
		return
	}

	act := r.ordered[depth]
	for day := 0; day < model.Days; day++ {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			if !r.placeTime(act, day, slot) {
				continue
			}
			r.search(depth + 1)
			r.undoTime(act, day, slot)
		}
	}
}

// completeCandidate turns the current time assignment into concrete rooms
// and keeps it if the full replay verifies. Candidates that cannot be
// matched or fail replay (travel) are skipped and the time search continues.
func (r *twoPhaseRun) completeCandidate() {
	if !r.workloadBounds() {
		return
	}
	placements, err := r.assignRooms()
	if _, ok := err.(unassignableError); ok {
		return
	} else if err != nil {
		r.err = err
		return
	}

	sol := &Solution{Placements: placements}
	if !VerifySolution(r.inst, sol) {
		return
	}
	if score := scoreTimetable(r.inst, placements); score < r.bestScore {
		r.best = placements
		r.bestScore = score
	}
	r.solutionsFound++
}

func (r *twoPhaseRun) placeTime(act model.Activity, day, slot int) bool {
	pIdx, ok := r.profIndex[act.ProfId]
	if !ok {
		return false
	}
	if r.profBusy[pIdx][day][slot] != noActivity {
		return false
	}
	for _, groupId := range act.GroupIds {
		gIdx, ok := r.groupIndex[groupId]
		if !ok {
			return false
		}
		if r.groupBusy[gIdx][day][slot] != noActivity {
			return false
		}
	}

	// Room-count relaxation: never admit more activities of a type into a
	// slot than rooms of that type exist.
	sameType := 0
	for _, id := range r.buckets[day][slot] {
		if r.byId[id].Type == act.Type {
			sameType++
		}
	}
	if sameType >= len(r.roomIdxByType[act.Type]) {
		return false
	}

	r.profHours[pIdx] += hoursPerActivity
	if r.profHours[pIdx] > maxProfHours {
		r.profHours[pIdx] -= hoursPerActivity
		return false
	}

	r.profBusy[pIdx][day][slot] = act.Id
	for _, groupId := range act.GroupIds {
		r.groupBusy[r.groupIndex[groupId]][day][slot] = act.Id
	}
	r.buckets[day][slot] = append(r.buckets[day][slot], act.Id)
	return true
}

func (r *twoPhaseRun) undoTime(act model.Activity, day, slot int) {
	bucket := r.buckets[day][slot]
	pIdx, ok := r.profIndex[act.ProfId]
	if !ok || len(bucket) == 0 || bucket[len(bucket)-1] != act.Id || r.profBusy[pIdx][day][slot] != act.Id {
		log.Panicf("undo without a matching time assignment: activity %d at day %d, slot %d", act.Id, day, slot)
	}

	r.profHours[pIdx] -= hoursPerActivity
	r.profBusy[pIdx][day][slot] = noActivity
	for _, groupId := range act.GroupIds {
		r.groupBusy[r.groupIndex[groupId]][day][slot] = noActivity
	}
	r.buckets[day][slot] = bucket[:len(bucket)-1]
}

func (r *twoPhaseRun) workloadBounds() bool {
	return lo.EveryBy(r.profHours, func(hours int) bool {
		return hours >= minProfHours && hours <= maxProfHours
	})
}

// assignRooms matches each slot's activities to type-compatible rooms via a
// largest bipartite matching and returns the resulting placement vector.
func (r *twoPhaseRun) assignRooms() ([]model.Placement, error) {
	placements := unassignedPlacements(len(r.inst.Activities))
	for day := 0; day < model.Days; day++ {
		for slot := 0; slot < model.SlotsPerDay; slot++ {
			bucket := r.buckets[day][slot]
			if len(bucket) == 0 {
				continue
			}
			roomIndexes := r.bucketRooms(bucket)

			activitiesAny := lo.Map(bucket, func(id int, _ int) any { return id })
			roomsAny := lo.Map(roomIndexes, func(idx int, _ int) any { return idx })
			compatible := func(activityAny any, roomAny any) (bool, error) {
				return r.byId[activityAny.(int)].Type == r.inst.Rooms[roomAny.(int)].Type, nil
			}

			graph, err := bipartitegraph.NewBipartiteGraph(activitiesAny, roomsAny, compatible)
			if err != nil {
				return nil, err
			}
			matching := graph.LargestMatching()
			if len(matching) < len(bucket) {
				return nil, unassignableError{}
			}

			for _, edge := range matching {
				actId := bucket[edge.Node1]
				roomIndex := roomIndexes[edge.Node2-len(bucket)]
				placements[actId] = model.Placement{ActivityId: actId, Day: day, Slot: slot, RoomIndex: roomIndex}
			}
		}
	}
	return placements, nil
}

// bucketRooms lists the indexes of every room whose type occurs in the
// bucket, in ascending room order.
func (r *twoPhaseRun) bucketRooms(bucket []int) []int {
	present := make(map[model.ActivityType]bool)
	for _, id := range bucket {
		present[r.byId[id].Type] = true
	}

	var indexes []int
	for t, rooms := range r.roomIdxByType {
		if present[t] {
			indexes = append(indexes, rooms...)
		}
	}
	slices.Sort(indexes)
	return indexes
}
