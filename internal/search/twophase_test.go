package search

import (
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTwoPhaseSolverFindsValidTimetable(t *testing.T) {
	// Arrange
	inst := model.DemoInstance(model.SizeS)
	solver := NewTwoPhaseSolver(1)

	// Act
	solution, err := solver.Solve(&inst)

	// Assert: the matching phase may pick any compatible room, so only
	// replayed feasibility and score consistency are pinned down.
	assert.Nil(t, err)
	assert.NotNil(t, solution)
	assert.True(t, VerifySolution(&inst, solution))
	assert.Equal(t, scoreTimetable(&inst, solution.Placements), solution.Score)
}

func TestTwoPhaseSolverFindsOptimumOnFullExploration(t *testing.T) {
	// Arrange: with a single course room the relaxation admits one course
	// per slot, so the time search enumerates exactly the trees the direct
	// solvers do.
	inst := GenerateCompactInstance()
	solver := NewTwoPhaseSolver(1000)

	// Act
	solution, err := solver.Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, solution)
	assert.True(t, VerifySolution(&inst, solution))
	assert.Equal(t, 0, solution.Score)
}

func TestTwoPhaseSolverEnforcesWorkloadBounds(t *testing.T) {
	// Arrange: Prof. Bob teaches a single two-hour activity, below the
	// weekly minimum, so no time assignment survives the workload check.
	inst := GenerateCampusInstance(5)

	// Act
	solution, err := NewTwoPhaseSolver(1).Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, solution)
}

func TestTwoPhaseSolverMatchesRoomsAcrossTypes(t *testing.T) {
	// Arrange: a second course for Prof. Bob lifts him to the weekly
	// minimum; the matching phase now has to juggle two course rooms and a
	// seminar room.
	inst := GenerateCampusInstance(5)
	inst.Activities = append(inst.Activities, model.Activity{
		Id: 4, SubjectId: 0, Type: model.Course, ProfId: 1, GroupIds: []int{1},
	})

	// Act
	solution, err := NewTwoPhaseSolver(1).Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.NotNil(t, solution)
	assert.True(t, VerifySolution(&inst, solution))
}

func TestTwoPhaseSolverReportsInfeasible(t *testing.T) {
	// Arrange: no seminar room exists, so the relaxation never admits the
	// seminar into any slot.
	inst := GenerateCompactInstance()
	inst.Activities[1].Type = model.Seminar

	// Act
	solution, err := NewTwoPhaseSolver(1).Solve(&inst)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, solution)
}

func TestTwoPhaseSolverRejectsInvalidInstance(t *testing.T) {
	// Arrange
	inst := GenerateCompactInstance()
	inst.Activities[0].SubjectId = 42

	// Act
	solution, err := NewTwoPhaseSolver(1).Solve(&inst)

	// Assert
	assert.NotNil(t, err)
	assert.Nil(t, solution)
}
