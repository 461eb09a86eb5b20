package search

import (
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestOrderActivitiesPrefersCoursesThenWiderGroups(t *testing.T) {
	// Arrange
	activities := []model.Activity{
		{Id: 0, Type: model.Course, GroupIds: []int{0}},
		{Id: 1, Type: model.Seminar, GroupIds: []int{0, 1}},
		{Id: 2, Type: model.Course, GroupIds: []int{0, 1, 2}},
		{Id: 3, Type: model.Seminar, GroupIds: []int{0}},
	}

	// Act
	ordered := orderActivities(activities)

	// Assert: courses precede everything else; within a type, wider
	// activities come first.
	ids := make([]int, 0, len(ordered))
	for _, act := range ordered {
		ids = append(ids, act.Id)
	}
	assert.Equal(t, []int{2, 0, 1, 3}, ids)

	// The input slice is left untouched.
	assert.Equal(t, 0, activities[0].Id)
}

func TestOrderActivitiesIsStableWithinTies(t *testing.T) {
	// Arrange: all activities tie on type and group count.
	activities := []model.Activity{
		{Id: 3, Type: model.Lab, GroupIds: []int{0}},
		{Id: 1, Type: model.Lab, GroupIds: []int{1}},
		{Id: 2, Type: model.Lab, GroupIds: []int{0}},
	}

	// Act
	ordered := orderActivities(activities)

	// Assert
	ids := make([]int, 0, len(ordered))
	for _, act := range ordered {
		ids = append(ids, act.Id)
	}
	assert.Equal(t, []int{3, 1, 2}, ids)
}

func TestActivitiesByIdResolvesReorderedSlices(t *testing.T) {
	// Arrange
	inst := GenerateCampusInstance(5)
	inst.Activities = []model.Activity{
		inst.Activities[2],
		inst.Activities[0],
		inst.Activities[3],
		inst.Activities[1],
	}

	// Act
	byId := activitiesById(&inst)

	// Assert
	for id, act := range byId {
		assert.Equal(t, id, act.Id)
	}
}

func TestUnassignedPlacements(t *testing.T) {
	// Act
	placements := unassignedPlacements(3)

	// Assert
	assert.Len(t, placements, 3)
	for _, p := range placements {
		assert.Equal(t, model.UnassignedActivity, p.ActivityId)
	}
}
