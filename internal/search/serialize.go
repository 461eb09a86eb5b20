package search

import (
	"fmt"

	"github.com/limaJavier/timetabling-csp/internal/model"
)

// placementInts is the width of one placement on the wire.
const placementInts = 4

// EncodeSolution flattens a solution into the wire format exchanged between
// multi-start workers and their reducer: four integers per placement
// (activityId, day, slot, roomIndex), in activity-id order.
func EncodeSolution(sol *Solution) []int {
	flat := make([]int, 0, len(sol.Placements)*placementInts)
	for _, p := range sol.Placements {
		flat = append(flat, p.ActivityId, p.Day, p.Slot, p.RoomIndex)
	}
	return flat
}

// DecodeSolution rebuilds a solution from the wire format, validating shape
// and bounds against the instance. The score is recomputed from scratch
// rather than trusted from the sender.
func DecodeSolution(inst *model.ProblemInstance, flat []int) (*Solution, error) {
	if len(flat)%placementInts != 0 {
		return nil, fmt.Errorf("encoded solution length %d is not a multiple of %d", len(flat), placementInts)
	}
	count := len(flat) / placementInts
	if count != len(inst.Activities) {
		return nil, fmt.Errorf("encoded solution holds %d placements, instance has %d activities", count, len(inst.Activities))
	}

	placements := make([]model.Placement, count)
	for i := 0; i < count; i++ {
		p := model.Placement{
			ActivityId: flat[i*placementInts],
			Day:        flat[i*placementInts+1],
			Slot:       flat[i*placementInts+2],
			RoomIndex:  flat[i*placementInts+3],
		}
		if p.ActivityId == model.UnassignedActivity {
			placements[i] = model.Placement{ActivityId: model.UnassignedActivity}
			continue
		}
		if p.ActivityId != i {
			return nil, fmt.Errorf("placement %d carries activity id %d", i, p.ActivityId)
		}
		if p.Day < 0 || p.Day >= model.Days || p.Slot < 0 || p.Slot >= model.SlotsPerDay {
			return nil, fmt.Errorf("activity %d placed outside the time grid: day %d, slot %d", p.ActivityId, p.Day, p.Slot)
		}
		if p.RoomIndex < 0 || p.RoomIndex >= len(inst.Rooms) {
			return nil, fmt.Errorf("activity %d placed in unknown room index %d", p.ActivityId, p.RoomIndex)
		}
		placements[i] = p
	}
	return &Solution{Placements: placements, Score: scoreTimetable(inst, placements)}, nil
}
