package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Raw* mirror the JSON document shape; activity and room types arrive as
// strings ("COURSE"/"SEMINAR"/"LAB") and are parsed during processing.

type RawRoom struct {
	Id         int
	BuildingId int
	Name       string
	Capacity   int
	Type       string
}

type RawActivity struct {
	Id        int
	SubjectId int
	Type      string
	ProfId    int
	GroupIds  []int
}

type RawInstance struct {
	Buildings  []Building
	Rooms      []RawRoom
	Subjects   []Subject
	Professors []Professor
	Groups     []Group
	Activities []RawActivity
	TravelTime [][]int
}

func ParseActivityType(raw string) (ActivityType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	typ, ok := lo.FindKeyBy(activityTypeNames, func(_ ActivityType, name string) bool {
		return name == normalized
	})
	if !ok {
		return 0, fmt.Errorf("unknown activity type %q: allowed values are COURSE, SEMINAR and LAB", raw)
	}
	return typ, nil
}

func InputFromJson(file string) (ProblemInstance, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInstance{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInstance{}, err
	}

	var rawInput RawInstance
	if err := mapstructure.Decode(inputJson, &rawInput); err != nil {
		return ProblemInstance{}, err
	}
	return ProcessRawInstance(rawInput)
}

// ProcessRawInstance turns a decoded raw document into a validated
// ProblemInstance.
func ProcessRawInstance(rawInput RawInstance) (ProblemInstance, error) {
	inst := ProblemInstance{
		Buildings:  rawInput.Buildings,
		Subjects:   rawInput.Subjects,
		Professors: rawInput.Professors,
		Groups:     rawInput.Groups,
		TravelTime: rawInput.TravelTime,
	}

	inst.Rooms = make([]Room, 0, len(rawInput.Rooms))
	for _, rawRoom := range rawInput.Rooms {
		typ, err := ParseActivityType(rawRoom.Type)
		if err != nil {
			return ProblemInstance{}, fmt.Errorf("room %q: %v", rawRoom.Name, err)
		}
		inst.Rooms = append(inst.Rooms, Room{
			Id:         rawRoom.Id,
			BuildingId: rawRoom.BuildingId,
			Name:       rawRoom.Name,
			Capacity:   rawRoom.Capacity,
			Type:       typ,
		})
	}

	inst.Activities = make([]Activity, 0, len(rawInput.Activities))
	for _, rawActivity := range rawInput.Activities {
		typ, err := ParseActivityType(rawActivity.Type)
		if err != nil {
			return ProblemInstance{}, fmt.Errorf("activity %d: %v", rawActivity.Id, err)
		}
		inst.Activities = append(inst.Activities, Activity{
			Id:        rawActivity.Id,
			SubjectId: rawActivity.SubjectId,
			Type:      typ,
			ProfId:    rawActivity.ProfId,
			GroupIds:  rawActivity.GroupIds,
		})
	}

	if err := inst.Validate(); err != nil {
		return ProblemInstance{}, err
	}
	return inst, nil
}
