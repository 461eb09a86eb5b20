package search

import (
	"fmt"
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestParallelSolverFindsValidTimetable(t *testing.T) {
	// Arrange
	inst := model.DemoInstance(model.SizeS)
	solver := NewParallelSolver(1, 4)

	// Act
	solution, err := solver.Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, solution)
	assert.True(t, VerifySolution(&inst, solution))
	assert.Equal(t, scoreTimetable(&inst, solution.Placements), solution.Score)
}

func TestParallelSolverMatchesSequentialOnFullExploration(t *testing.T) {
	// Arrange: a tree small enough to exhaust, whose optimum is a gapless
	// early-morning timetable in a single building.
	inst := GenerateCompactInstance()
	reference, err := NewSequentialSolver(1000).Solve(&inst)
	assert.Nil(t, err)
	assert.NotNil(t, reference)
	assert.Equal(t, 0, reference.Score)

	for _, threads := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprintf("%v threads", threads), func(t *testing.T) {
			// Act
			solution, err := NewParallelSolver(1000, threads).Solve(&inst)

			// Assert
			assert.Nil(t, err)
			assert.NotNil(t, solution)
			assert.True(t, VerifySolution(&inst, solution))
			assert.Equal(t, reference.Score, solution.Score)
		})
	}
}

func TestParallelSolverStopsAtFirstSolution(t *testing.T) {
	// Arrange
	inst := model.DemoInstance(model.SizeM)
	solver := NewParallelSolver(1, 8)

	// Act
	solution, err := solver.Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, solution)
	assert.True(t, VerifySolution(&inst, solution))
}

func TestParallelSolverReportsInfeasible(t *testing.T) {
	// Arrange: the only room is a course room, so a seminar can never be
	// placed.
	inst := GenerateCompactInstance()
	inst.Activities[1].Type = model.Seminar

	// Act
	solution, err := NewParallelSolver(1, 4).Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, solution)
}

func TestParallelSolverRejectsInvalidInstance(t *testing.T) {
	// Arrange
	inst := GenerateCompactInstance()
	inst.Activities[0].ProfId = 99

	// Act
	solution, err := NewParallelSolver(1, 4).Solve(&inst)

	// Assert
	assert.NotNil(t, err)
	assert.Nil(t, solution)
}
