package search

import (
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPlaceUndoRestoresState(t *testing.T) {
	// Arrange
	inst := GenerateCampusInstance(5)
	state := newTimetableState(&inst)
	fresh := newTimetableState(&inst)
	acts := inst.Activities

	// Act
	assert.True(t, state.place(acts[0], 0, 0, 0))
	assert.True(t, state.place(acts[1], 0, 1, 1))
	assert.True(t, state.place(acts[2], 1, 0, 0))

	state.undo(acts[2], 1, 0, 0)
	state.undo(acts[1], 0, 1, 1)
	state.undo(acts[0], 0, 0, 0)

	// Assert
	assert.Equal(t, fresh, state)
}

func TestPlaceRejectsConflicts(t *testing.T) {
	t.Run("Occupied room", func(t *testing.T) {
		// Arrange
		inst := GenerateCampusInstance(5)
		state := newTimetableState(&inst)

		// Act & Assert
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.False(t, state.place(inst.Activities[1], 0, 0, 0))
	})

	t.Run("Busy professor in either order", func(t *testing.T) {
		// Arrange: same professor, disjoint groups, different rooms, so only
		// the professor check can reject the second placement.
		inst := GenerateCampusInstance(5)
		inst.Activities[3].GroupIds = []int{1}
		state := newTimetableState(&inst)

		// Act & Assert
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.False(t, state.place(inst.Activities[3], 0, 0, 2))

		state.undo(inst.Activities[0], 0, 0, 0)

		assert.True(t, state.place(inst.Activities[3], 0, 0, 2))
		assert.False(t, state.place(inst.Activities[0], 0, 0, 0))
	})

	t.Run("Busy group", func(t *testing.T) {
		// Arrange: activity 2 attends both groups, activity 1 occupies group 2.
		inst := GenerateCampusInstance(5)
		state := newTimetableState(&inst)

		// Act & Assert
		assert.True(t, state.place(inst.Activities[1], 0, 0, 1))
		assert.False(t, state.place(inst.Activities[2], 0, 0, 0))
	})

	t.Run("Out-of-grid coordinates", func(t *testing.T) {
		// Arrange
		inst := GenerateCampusInstance(5)
		state := newTimetableState(&inst)
		act := inst.Activities[0]

		// Act & Assert
		assert.False(t, state.place(act, -1, 0, 0))
		assert.False(t, state.place(act, model.Days, 0, 0))
		assert.False(t, state.place(act, 0, -1, 0))
		assert.False(t, state.place(act, 0, model.SlotsPerDay, 0))
		assert.False(t, state.place(act, 0, 0, -1))
		assert.False(t, state.place(act, 0, 0, len(inst.Rooms)))
	})
}

func TestTravelTimeBetweenAdjacentSlots(t *testing.T) {
	t.Run("Distant buildings rejected in either direction", func(t *testing.T) {
		// Arrange
		inst := GenerateCampusInstance(15)
		state := newTimetableState(&inst)

		// Act & Assert: the professor teaches in building A, then cannot be
		// in building B one slot later.
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.False(t, state.place(inst.Activities[3], 0, 1, 1))

		state.undo(inst.Activities[0], 0, 0, 0)

		// Same conflict seen from the earlier slot.
		assert.True(t, state.place(inst.Activities[3], 0, 1, 1))
		assert.False(t, state.place(inst.Activities[0], 0, 0, 0))
	})

	t.Run("Distant buildings allowed with an idle slot between", func(t *testing.T) {
		// Arrange
		inst := GenerateCampusInstance(15)
		state := newTimetableState(&inst)

		// Act & Assert
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.True(t, state.place(inst.Activities[3], 0, 2, 1))
	})

	t.Run("Nearby buildings allowed back to back", func(t *testing.T) {
		// Arrange
		inst := GenerateCampusInstance(5)
		state := newTimetableState(&inst)

		// Act & Assert
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.True(t, state.place(inst.Activities[3], 0, 1, 1))
	})
}

func TestFinalWorkloadBounds(t *testing.T) {
	t.Run("Satisfied", func(t *testing.T) {
		// Arrange
		inst := GenerateCompactInstance()
		state := newTimetableState(&inst)

		// Act
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.True(t, state.place(inst.Activities[1], 0, 1, 0))

		// Assert
		assert.True(t, state.finalWorkloadBounds())
	})

	t.Run("Underloaded professor", func(t *testing.T) {
		// Arrange
		inst := GenerateCompactInstance()
		state := newTimetableState(&inst)

		// Act
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))

		// Assert
		assert.False(t, state.finalWorkloadBounds())
	})

	t.Run("Idle professor", func(t *testing.T) {
		// Arrange: professor 2 of the campus fixture never teaches.
		inst := GenerateCampusInstance(5)
		state := newTimetableState(&inst)

		// Act
		assert.True(t, state.place(inst.Activities[0], 0, 0, 0))
		assert.True(t, state.place(inst.Activities[3], 0, 1, 2))

		// Assert
		assert.False(t, state.finalWorkloadBounds())
	})

	t.Run("Overloaded professor", func(t *testing.T) {
		// Arrange
		inst := GenerateCompactInstance()
		state := newTimetableState(&inst)

		// Act
		state.profHours[0] = maxProfHours + hoursPerActivity

		// Assert
		assert.False(t, state.finalWorkloadBounds())
	})
}

func TestUndoWithoutPlacementPanics(t *testing.T) {
	// Arrange
	inst := GenerateCampusInstance(5)
	state := newTimetableState(&inst)

	// Act & Assert
	assert.Panics(t, func() { state.undo(inst.Activities[0], 0, 0, 0) })
}

func TestCloneIsolatesOccupancy(t *testing.T) {
	// Arrange
	inst := GenerateCampusInstance(5)
	state := newTimetableState(&inst)
	assert.True(t, state.place(inst.Activities[0], 0, 0, 0))

	// Act
	branch := state.clone()
	assert.True(t, branch.place(inst.Activities[1], 0, 1, 1))

	// Assert: the branch sees both placements, the original only its own.
	assert.Equal(t, inst.Activities[0].Id, branch.roomGrid[0][0][0])
	assert.Equal(t, inst.Activities[1].Id, branch.roomGrid[1][0][1])
	assert.Equal(t, noActivity, state.roomGrid[1][0][1])
	assert.Equal(t, 0, state.profHours[1])
}
