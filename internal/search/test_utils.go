package search

import "github.com/limaJavier/timetabling-csp/internal/model"

// GenerateCompactInstance builds the smallest feasible instance: one
// building, one course room and one professor teaching the same group twice.
// Its full search tree has 870 complete timetables (30 x 29 slot pairs), all
// of them valid, so tests can exhaust it and compare solvers on the global
// optimum.
func GenerateCompactInstance() model.ProblemInstance {
	return model.ProblemInstance{
		Buildings:  []model.Building{{Id: 0, Name: "Main"}},
		TravelTime: [][]int{{0}},
		Rooms: []model.Room{
			{Id: 0, BuildingId: 0, Name: "M101", Capacity: 50, Type: model.Course},
		},
		Subjects: []model.Subject{{Id: 0, Name: "Math", CourseSlots: 2}},
		Professors: []model.Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0}},
		},
		Groups: []model.Group{{Id: 0, Name: "Group 1", Subjects: []int{0}}},
		Activities: []model.Activity{
			{Id: 0, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0}},
			{Id: 1, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0}},
		},
	}
}

// GenerateCampusInstance builds a two-building fixture with a parameterized
// travel time between the buildings, used to probe occupancy and travel
// checks. Activity 0 and 3 share a professor, activity 2 attends both groups
// and the two course rooms sit in different buildings.
func GenerateCampusInstance(travelMinutes int) model.ProblemInstance {
	return model.ProblemInstance{
		Buildings: []model.Building{{Id: 0, Name: "A"}, {Id: 1, Name: "B"}},
		TravelTime: [][]int{
			{0, travelMinutes},
			{travelMinutes, 0},
		},
		Rooms: []model.Room{
			{Id: 0, BuildingId: 0, Name: "A101", Capacity: 60, Type: model.Course},
			{Id: 1, BuildingId: 1, Name: "B101", Capacity: 60, Type: model.Course},
			{Id: 2, BuildingId: 0, Name: "A201", Capacity: 30, Type: model.Seminar},
		},
		Subjects: []model.Subject{{Id: 0, Name: "Math", CourseSlots: 1, SeminarSlots: 1}},
		Professors: []model.Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0}, CanTeachSeminar: []int{0}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{0}},
		},
		Groups: []model.Group{
			{Id: 0, Name: "Group 1", Subjects: []int{0}},
			{Id: 1, Name: "Group 2", Subjects: []int{0}},
		},
		Activities: []model.Activity{
			{Id: 0, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0}},
			{Id: 1, SubjectId: 0, Type: model.Course, ProfId: 1, GroupIds: []int{1}},
			{Id: 2, SubjectId: 0, Type: model.Course, ProfId: 0, GroupIds: []int{0, 1}},
			{Id: 3, SubjectId: 0, Type: model.Seminar, ProfId: 0, GroupIds: []int{0}},
		},
	}
}
