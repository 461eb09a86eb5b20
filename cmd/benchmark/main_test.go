package main

import (
	"testing"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCsvRecord(t *testing.T) {
	result := BenchmarkResult{
		Config:   SolverConfig{Type: parallel, Threads: 4},
		Case:     CaseMetadata{Size: model.SizeM, Activities: 13, Rooms: 6, Groups: 4, Professors: 5},
		Duration: 42,
		Score:    3,
		Result:   solved,
	}

	assert.Equal(t, []string{"parallel", "4", "0", "m", "13", "6", "4", "5", "42", "3", "solved"}, csvRecord(result))
}

func TestMeasureSolvesSmallInstance(t *testing.T) {
	inst := model.DemoInstance(model.SizeXS)

	duration, score, result := measure(SolverConfig{Type: sequential}, &inst)

	assert.Equal(t, solved, result)
	assert.GreaterOrEqual(t, duration, int64(0))
	assert.GreaterOrEqual(t, score, 0)
}
