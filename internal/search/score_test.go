package search

import (
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

// scoringInstance has three course rooms in three different buildings, one
// professor and one group, so every penalty can be triggered by hand-built
// placement vectors.
func scoringInstance() model.ProblemInstance {
	return model.ProblemInstance{
		Buildings:  []model.Building{{Id: 0, Name: "A"}, {Id: 1, Name: "B"}, {Id: 2, Name: "C"}},
		TravelTime: [][]int{{0, 5, 5}, {5, 0, 5}, {5, 5, 0}},
		Rooms: []model.Room{
			{Id: 0, BuildingId: 0, Name: "A101", Capacity: 50, Type: model.Course},
			{Id: 1, BuildingId: 1, Name: "B101", Capacity: 50, Type: model.Course},
			{Id: 2, BuildingId: 2, Name: "C101", Capacity: 50, Type: model.Course},
		},
		Subjects:   []model.Subject{{Id: 0, Name: "Math", CourseSlots: 3}},
		Professors: []model.Professor{{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0}}},
		Groups:     []model.Group{{Id: 0, Name: "Group 1", Subjects: []int{0}}},
		Activities: []model.Activity{
			{Id: 0, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0}},
			{Id: 1, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0}},
			{Id: 2, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0}},
		},
	}
}

func TestScoreTimetable(t *testing.T) {
	inst := scoringInstance()

	t.Run("Compact early schedule costs nothing", func(t *testing.T) {
		// Arrange
		placements := []model.Placement{
			{ActivityId: 0, Day: 0, Slot: 0, RoomIndex: 0},
			{ActivityId: 1, Day: 0, Slot: 1, RoomIndex: 0},
			{ActivityId: 2, Day: 1, Slot: 0, RoomIndex: 0},
		}

		// Act & Assert
		assert.Equal(t, 0, scoreTimetable(&inst, placements))
	})

	t.Run("Late slots cost one point each", func(t *testing.T) {
		// Arrange
		placements := []model.Placement{
			{ActivityId: 0, Day: 0, Slot: 4, RoomIndex: 0},
			{ActivityId: 1, Day: 0, Slot: 5, RoomIndex: 0},
			{ActivityId: 2, Day: 1, Slot: 4, RoomIndex: 0},
		}

		// Act & Assert
		assert.Equal(t, 3, scoreTimetable(&inst, placements))
	})

	t.Run("Idle slots inside the day cost per group and professor", func(t *testing.T) {
		// Arrange: slots 1 and 2 sit idle between the group's (and the
		// professor's) first and last activity of day 0.
		placements := []model.Placement{
			{ActivityId: 0, Day: 0, Slot: 0, RoomIndex: 0},
			{ActivityId: 1, Day: 0, Slot: 3, RoomIndex: 0},
			{ActivityId: 2, Day: 2, Slot: 0, RoomIndex: 0},
		}

		// Act & Assert
		assert.Equal(t, 4, scoreTimetable(&inst, placements))
	})

	t.Run("Visiting a third building in one day costs per entity", func(t *testing.T) {
		// Arrange
		placements := []model.Placement{
			{ActivityId: 0, Day: 0, Slot: 0, RoomIndex: 0},
			{ActivityId: 1, Day: 0, Slot: 1, RoomIndex: 1},
			{ActivityId: 2, Day: 0, Slot: 2, RoomIndex: 2},
		}

		// Act & Assert
		assert.Equal(t, 2, scoreTimetable(&inst, placements))
	})

	t.Run("Unassigned entries are skipped", func(t *testing.T) {
		// Arrange
		placements := []model.Placement{
			{ActivityId: 0, Day: 0, Slot: 0, RoomIndex: 0},
			{ActivityId: model.UnassignedActivity},
			{ActivityId: 2, Day: 0, Slot: 2, RoomIndex: 0},
		}

		// Act & Assert
		assert.Equal(t, 2, scoreTimetable(&inst, placements))
	})

	t.Run("Scoring is repeatable and read-only", func(t *testing.T) {
		// Arrange
		placements := []model.Placement{
			{ActivityId: 0, Day: 0, Slot: 0, RoomIndex: 0},
			{ActivityId: 1, Day: 0, Slot: 4, RoomIndex: 1},
			{ActivityId: 2, Day: 3, Slot: 2, RoomIndex: 2},
		}
		before := make([]model.Placement, len(placements))
		copy(before, placements)

		// Act
		first := scoreTimetable(&inst, placements)
		second := scoreTimetable(&inst, placements)

		// Assert
		assert.Equal(t, first, second)
		assert.Equal(t, before, placements)
	})
}
