package search

import (
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSequentialSolverFindsValidTimetable(t *testing.T) {
	// Arrange
	inst := model.DemoInstance(model.SizeS)
	solver := NewSequentialSolver(1)

	// Act
	solution, err := solver.Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, solution)
	assert.True(t, VerifySolution(&inst, solution))
	assert.Equal(t, scoreTimetable(&inst, solution.Placements), solution.Score)
}

func TestSequentialSolverImprovesWithLargerBudget(t *testing.T) {
	// Arrange
	inst := GenerateCompactInstance()

	// Act
	first, err1 := NewSequentialSolver(1).Solve(&inst)
	exhausted, err2 := NewSequentialSolver(1000).Solve(&inst)

	// Assert: exhausting the tree can only improve on the first find, and
	// the compact instance admits a penalty-free timetable.
	assert.Nil(t, err1)
	assert.Nil(t, err2)
	assert.NotNil(t, first)
	assert.NotNil(t, exhausted)
	assert.LessOrEqual(t, exhausted.Score, first.Score)
	assert.Equal(t, 0, exhausted.Score)
}

func TestSequentialSolverReportsInfeasible(t *testing.T) {
	t.Run("No room of the required type", func(t *testing.T) {
		// Arrange
		inst := GenerateCompactInstance()
		inst.Activities[1].Type = model.Seminar

		// Act
		solution, err := NewSequentialSolver(1).Solve(&inst)

		// Assert
		assert.Nil(t, err)
		assert.Nil(t, solution)
	})

	t.Run("Idle professor breaks the workload lower bound", func(t *testing.T) {
		// Arrange
		inst := GenerateCompactInstance()
		inst.Professors = append(inst.Professors, model.Professor{Id: 1, Name: "Prof. Bob"})

		// Act
		solution, err := NewSequentialSolver(1).Solve(&inst)

		// Assert
		assert.Nil(t, err)
		assert.Nil(t, solution)
	})
}

func TestSequentialSolverRejectsInvalidInstance(t *testing.T) {
	// Arrange
	inst := GenerateCompactInstance()
	inst.Activities[0].GroupIds = nil

	// Act
	solution, err := NewSequentialSolver(1).Solve(&inst)

	// Assert
	assert.NotNil(t, err)
	assert.Nil(t, solution)
}
