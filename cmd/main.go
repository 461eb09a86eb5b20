package main

import (
	"fmt"
	"log"
	"time"

	"github.com/limaJavier/timetabling-csp/internal/format"
	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/limaJavier/timetabling-csp/internal/search"
)

const demoSize = model.SizeXXL

func main() {
	inst := model.DemoInstance(demoSize)

	// solver := search.NewParallelSolver(1, runtime.NumCPU())
	solver := search.NewSequentialSolver(1)

	start := time.Now()
	solution, err := solver.Solve(&inst)
	if err != nil {
		log.Fatalf("cannot solve demo instance: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Println("========================================")
	fmt.Println("SEQUENTIAL TIMETABLING SOLVER")
	fmt.Printf("Activities: %v\n", len(inst.Activities))
	fmt.Printf("Time: %v ms\n", elapsed.Milliseconds())

	if solution == nil {
		fmt.Println("No valid timetable found.")
	} else {
		fmt.Printf("Valid timetable found, score = %v\n\n", solution.Score)

		fmt.Println("Raw placements:")
		for _, p := range solution.Placements {
			if p.ActivityId < 0 {
				continue
			}
			act := inst.Activities[p.ActivityId]
			fmt.Printf("Activity %v | Subject=%v | Prof=%v | Day=%v Slot=%v Room=%v\n",
				p.ActivityId,
				inst.Subjects[act.SubjectId].Name,
				inst.Professors[act.ProfId].Name,
				p.Day, p.Slot,
				inst.Rooms[p.RoomIndex].Name,
			)
		}

		fmt.Println("\nPretty per-group schedules:")
		fmt.Print(format.GroupSchedules(&inst, solution.Placements))
	}

	fmt.Println("========================================")
}
