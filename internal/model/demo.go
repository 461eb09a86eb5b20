package model

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// DemoSize selects one of the built-in synthetic instances. XS and S share
// the smallest instance.
type DemoSize int

const (
	SizeXS DemoSize = iota
	SizeS
	SizeM
	SizeL
	SizeXL
	SizeXXL
	SizeXXXL
)

var demoSizeNames = map[DemoSize]string{
	SizeXS:   "xs",
	SizeS:    "s",
	SizeM:    "m",
	SizeL:    "l",
	SizeXL:   "xl",
	SizeXXL:  "xxl",
	SizeXXXL: "xxxl",
}

func (size DemoSize) String() string {
	if name, ok := demoSizeNames[size]; ok {
		return name
	}
	return "unknown"
}

func ParseDemoSize(raw string) (DemoSize, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	size, ok := lo.FindKeyBy(demoSizeNames, func(_ DemoSize, name string) bool {
		return name == normalized
	})
	if !ok {
		return 0, fmt.Errorf("unknown demo size %q: allowed values are %v", raw, lo.Values(demoSizeNames))
	}
	return size, nil
}

// DemoInstance builds the synthetic instance for a size. The returned
// instance always passes Validate.
func DemoInstance(size DemoSize) ProblemInstance {
	switch size {
	case SizeXS, SizeS:
		return demoSmall()
	case SizeM:
		return demoMedium()
	case SizeL:
		return demoLarge()
	case SizeXL:
		return demoXL()
	case SizeXXL:
		return demoXXL()
	case SizeXXXL:
		return demoXXXL()
	}
	return demoSmall()
}

// activitySet assigns sequential ids, keeping them dense for placement
// arrays.
type activitySet struct {
	activities []Activity
}

func (set *activitySet) add(subjectId int, typ ActivityType, profId int, groupIds []int) {
	set.activities = append(set.activities, Activity{
		Id:        len(set.activities),
		SubjectId: subjectId,
		Type:      typ,
		ProfId:    profId,
		GroupIds:  groupIds,
	})
}

func demoGroups(count int, subjects []int) []Group {
	return lo.Map(lo.Range(count), func(g int, _ int) Group {
		return Group{Id: g, Name: fmt.Sprintf("Group %d", g+1), Subjects: subjects}
	})
}

// 2 buildings, 3 rooms, 2 subjects, 2 professors, 2 groups, 6 activities.
func demoSmall() ProblemInstance {
	inst := ProblemInstance{
		Buildings: []Building{{0, "A"}, {1, "B"}},
		TravelTime: [][]int{
			{0, 5},
			{5, 0},
		},
		Rooms: []Room{
			{0, 0, "A101", 60, Course},
			{1, 0, "A201", 30, Seminar},
			{2, 1, "B301", 20, Lab},
		},
		Subjects: []Subject{
			{0, "Math", 1, 1, 0},
			{1, "Programming", 1, 0, 1},
		},
		Professors: []Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0}, CanTeachSeminar: []int{0}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{1}, CanTeachLab: []int{1}},
		},
		Groups: demoGroups(2, []int{0, 1}),
	}

	var set activitySet
	set.add(0, Course, 0, []int{0, 1})
	set.add(1, Course, 1, []int{0, 1})
	for g := 0; g < 2; g++ {
		set.add(0, Seminar, 0, []int{g})
	}
	for g := 0; g < 2; g++ {
		set.add(1, Lab, 1, []int{g})
	}
	inst.Activities = set.activities
	return inst
}

// 13 activities across 3 groups.
func demoMedium() ProblemInstance {
	inst := ProblemInstance{
		Buildings: []Building{{0, "A"}, {1, "B"}},
		TravelTime: [][]int{
			{0, 5},
			{5, 0},
		},
		Rooms: []Room{
			{0, 0, "A101", 100, Course},
			{1, 0, "A201", 40, Seminar},
			{2, 1, "B301", 30, Lab},
		},
		Subjects: []Subject{
			{0, "Math", 2, 1, 0},
			{1, "Programming", 1, 0, 1},
			{2, "Physics", 1, 0, 1},
		},
		Professors: []Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0, 1}, CanTeachSeminar: []int{0}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{1, 2}, CanTeachLab: []int{1, 2}},
		},
		Groups: demoGroups(3, []int{0, 1, 2}),
	}

	allGroups := lo.Range(3)
	var set activitySet
	for k := 0; k < 2; k++ {
		set.add(0, Course, 0, allGroups)
	}
	set.add(1, Course, 1, allGroups)
	set.add(2, Course, 1, allGroups)
	for g := 0; g < 3; g++ {
		set.add(0, Seminar, 0, []int{g})
	}
	for g := 0; g < 3; g++ {
		set.add(1, Lab, 1, []int{g})
	}
	for g := 0; g < 3; g++ {
		set.add(2, Lab, 1, []int{g})
	}
	inst.Activities = set.activities
	return inst
}

// 3 buildings, 7 rooms, 4 subjects, 3 professors, 30 activities.
func demoLarge() ProblemInstance {
	inst := ProblemInstance{
		Buildings: []Building{{0, "A"}, {1, "B"}, {2, "C"}},
		TravelTime: [][]int{
			{0, 5, 8},
			{5, 0, 6},
			{8, 6, 0},
		},
		Rooms: []Room{
			{0, 0, "A101", 120, Course},
			{1, 0, "A201", 40, Seminar},
			{2, 0, "A202", 30, Seminar},
			{3, 1, "B301", 30, Lab},
			{4, 1, "B302", 25, Lab},
			{5, 2, "C101", 80, Course},
			{6, 2, "C201", 35, Seminar},
		},
		Subjects: []Subject{
			{0, "Math", 2, 1, 0},
			{1, "Programming", 1, 0, 2},
			{2, "Physics", 1, 1, 1},
			{3, "Databases", 1, 1, 1},
		},
		Professors: []Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0, 2}, CanTeachSeminar: []int{0, 2, 3}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{1, 3}, CanTeachLab: []int{1, 2, 3}},
			{Id: 2, Name: "Prof. Carol", CanTeachCourse: []int{2, 3}, CanTeachSeminar: []int{0, 2, 3}, CanTeachLab: []int{1, 2}},
		},
		Groups: demoGroups(3, []int{0, 1, 2, 3}),
	}

	allGroups := lo.Range(3)
	var set activitySet
	// Courses: Math twice, then Programming, Physics, Databases.
	for k := 0; k < 2; k++ {
		set.add(0, Course, 0, allGroups)
	}
	set.add(1, Course, 1, allGroups)
	set.add(2, Course, 2, allGroups)
	set.add(3, Course, 2, allGroups)
	// Seminars: Math (Alice/Carol mix), Physics, Databases.
	for g := 0; g < 3; g++ {
		set.add(0, Seminar, lo.Ternary(g == 0, 0, 2), []int{g})
	}
	for g := 0; g < 3; g++ {
		set.add(2, Seminar, 2, []int{g})
	}
	for g := 0; g < 3; g++ {
		set.add(3, Seminar, 2, []int{g})
	}
	// Labs: Programming twice per group, Physics and Databases once.
	for g := 0; g < 3; g++ {
		for k := 0; k < 2; k++ {
			set.add(1, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	for g := 0; g < 3; g++ {
		set.add(2, Lab, 1, []int{g})
	}
	for g := 0; g < 3; g++ {
		set.add(3, Lab, 1, []int{g})
	}
	// Extra programming practice labs to round the instance out.
	for extra := 0; extra < 4; extra++ {
		set.add(1, Lab, lo.Ternary(extra%2 == 0, 1, 2), []int{extra % 3})
	}
	inst.Activities = set.activities
	return inst
}

// 3 buildings, 8 rooms, 5 subjects, 4 groups, 45 activities.
func demoXL() ProblemInstance {
	inst := ProblemInstance{
		Buildings: []Building{{0, "A"}, {1, "B"}, {2, "C"}},
		TravelTime: [][]int{
			{0, 4, 7},
			{4, 0, 6},
			{7, 6, 0},
		},
		Rooms: []Room{
			{0, 0, "A101", 150, Course},
			{1, 0, "A201", 50, Seminar},
			{2, 0, "A202", 40, Seminar},
			{3, 1, "B301", 30, Lab},
			{4, 1, "B302", 30, Lab},
			{5, 1, "B303", 25, Lab},
			{6, 2, "C101", 100, Course},
			{7, 2, "C201", 40, Seminar},
		},
		Subjects: []Subject{
			{0, "Math", 2, 1, 0},
			{1, "Programming", 1, 0, 2},
			{2, "Physics", 1, 1, 2},
			{3, "Databases", 1, 1, 1},
			{4, "Algorithms", 1, 1, 0},
		},
		Professors: []Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0, 4}, CanTeachSeminar: []int{0, 2, 4}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{1, 3}, CanTeachSeminar: []int{3}, CanTeachLab: []int{1, 2, 3}},
			{Id: 2, Name: "Prof. Carol", CanTeachCourse: []int{2, 3, 4}, CanTeachSeminar: []int{0, 2, 3, 4}, CanTeachLab: []int{1, 2}},
		},
		Groups: demoGroups(4, []int{0, 1, 2, 3, 4}),
	}

	allGroups := lo.Range(4)
	var set activitySet
	for k := 0; k < 2; k++ {
		set.add(0, Course, 0, allGroups)
	}
	set.add(1, Course, 1, allGroups)
	set.add(2, Course, 2, allGroups)
	set.add(3, Course, 2, allGroups)
	set.add(4, Course, 0, allGroups)
	// Seminars: Math split Alice/Carol, Physics and Databases by Carol,
	// Algorithms by Alice.
	for g := 0; g < 4; g++ {
		set.add(0, Seminar, lo.Ternary(g < 2, 0, 2), []int{g})
	}
	for g := 0; g < 4; g++ {
		set.add(2, Seminar, 2, []int{g})
	}
	for g := 0; g < 4; g++ {
		set.add(3, Seminar, 2, []int{g})
	}
	for g := 0; g < 4; g++ {
		set.add(4, Seminar, 0, []int{g})
	}
	// Labs: Programming and Physics twice per group, Databases once.
	for g := 0; g < 4; g++ {
		for k := 0; k < 2; k++ {
			set.add(1, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	for g := 0; g < 4; g++ {
		for k := 0; k < 2; k++ {
			set.add(2, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	for g := 0; g < 4; g++ {
		set.add(3, Lab, 1, []int{g})
	}
	for extra := 0; extra < 3; extra++ {
		set.add(1, Lab, lo.Ternary(extra%2 == 0, 1, 2), []int{extra % 4})
	}
	inst.Activities = set.activities
	return inst
}

// 3 buildings, 9 rooms, 6 subjects, 5 groups, 68 activities.
func demoXXL() ProblemInstance {
	inst := ProblemInstance{
		Buildings: []Building{{0, "A"}, {1, "B"}, {2, "C"}},
		TravelTime: [][]int{
			{0, 4, 8},
			{4, 0, 6},
			{8, 6, 0},
		},
		Rooms: []Room{
			{0, 0, "A101", 160, Course},
			{1, 0, "A201", 60, Seminar},
			{2, 0, "A202", 50, Seminar},
			{3, 1, "B301", 35, Lab},
			{4, 1, "B302", 35, Lab},
			{5, 1, "B303", 30, Lab},
			{6, 2, "C101", 120, Course},
			{7, 2, "C201", 50, Seminar},
			{8, 2, "C202", 40, Seminar},
		},
		Subjects: []Subject{
			{0, "Math", 2, 1, 0},
			{1, "Programming", 2, 0, 2},
			{2, "Physics", 1, 1, 2},
			{3, "Databases", 1, 1, 1},
			{4, "Algorithms", 1, 1, 0},
			{5, "OperatingSys", 1, 1, 2},
		},
		Professors: []Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0, 4}, CanTeachSeminar: []int{0, 2, 4}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{1, 3, 5}, CanTeachSeminar: []int{3, 5}, CanTeachLab: []int{1, 2, 3, 5}},
			{Id: 2, Name: "Prof. Carol", CanTeachCourse: []int{2, 3, 4, 5}, CanTeachSeminar: []int{0, 2, 3, 4, 5}, CanTeachLab: []int{1, 2, 5}},
		},
		Groups: demoGroups(5, []int{0, 1, 2, 3, 4, 5}),
	}

	allGroups := lo.Range(5)
	var set activitySet
	for k := 0; k < 2; k++ {
		set.add(0, Course, 0, allGroups)
	}
	for k := 0; k < 2; k++ {
		set.add(1, Course, 1, allGroups)
	}
	set.add(2, Course, 2, allGroups)
	set.add(3, Course, 2, allGroups)
	set.add(4, Course, 0, allGroups)
	set.add(5, Course, 1, allGroups)
	// Seminars: one per group for every subject but Programming.
	for g := 0; g < 5; g++ {
		set.add(0, Seminar, lo.Ternary(g < 3, 0, 2), []int{g})
	}
	for g := 0; g < 5; g++ {
		set.add(2, Seminar, 2, []int{g})
	}
	for g := 0; g < 5; g++ {
		set.add(3, Seminar, 2, []int{g})
	}
	for g := 0; g < 5; g++ {
		set.add(4, Seminar, 0, []int{g})
	}
	for g := 0; g < 5; g++ {
		set.add(5, Seminar, 1, []int{g})
	}
	// Labs: Programming, Physics and OperatingSys twice per group,
	// Databases once.
	for g := 0; g < 5; g++ {
		for k := 0; k < 2; k++ {
			set.add(1, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	for g := 0; g < 5; g++ {
		for k := 0; k < 2; k++ {
			set.add(2, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	for g := 0; g < 5; g++ {
		for k := 0; k < 2; k++ {
			set.add(5, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	for g := 0; g < 5; g++ {
		set.add(3, Lab, 1, []int{g})
	}
	inst.Activities = set.activities
	return inst
}

// 4 buildings, 10 rooms, 6 subjects, 4 professors, 6 groups, 99 activities.
func demoXXXL() ProblemInstance {
	inst := ProblemInstance{
		Buildings: []Building{{0, "A"}, {1, "B"}, {2, "C"}, {3, "D"}},
		TravelTime: [][]int{
			{0, 4, 7, 10},
			{4, 0, 6, 9},
			{7, 6, 0, 5},
			{10, 9, 5, 0},
		},
		Rooms: []Room{
			{0, 0, "A101", 180, Course},
			{1, 0, "A201", 60, Seminar},
			{2, 0, "A202", 60, Seminar},
			{3, 1, "B301", 40, Lab},
			{4, 1, "B302", 40, Lab},
			{5, 1, "B303", 35, Lab},
			{6, 2, "C101", 150, Course},
			{7, 2, "C201", 50, Seminar},
			{8, 3, "D101", 120, Course},
			{9, 3, "D201", 45, Seminar},
		},
		Subjects: []Subject{
			{0, "Math", 2, 1, 0},
			{1, "Programming", 2, 0, 3},
			{2, "Physics", 2, 1, 2},
			{3, "Databases", 1, 1, 2},
			{4, "Algorithms", 1, 1, 0},
			{5, "Projects", 1, 1, 2},
		},
		Professors: []Professor{
			{Id: 0, Name: "Prof. Alice", CanTeachCourse: []int{0, 4}, CanTeachSeminar: []int{0, 2, 4}},
			{Id: 1, Name: "Prof. Bob", CanTeachCourse: []int{1, 3, 5}, CanTeachSeminar: []int{3, 5}, CanTeachLab: []int{1, 2, 3, 5}},
			{Id: 2, Name: "Prof. Carol", CanTeachCourse: []int{2, 3, 4, 5}, CanTeachSeminar: []int{0, 2, 3, 4, 5}, CanTeachLab: []int{1, 2, 5}},
			{Id: 3, Name: "Prof. Dave", CanTeachCourse: []int{1, 2, 5}, CanTeachSeminar: []int{1, 2, 5}, CanTeachLab: []int{1, 2, 3, 5}},
		},
		Groups: demoGroups(6, []int{0, 1, 2, 3, 4, 5}),
	}

	allGroups := lo.Range(6)
	var set activitySet
	for k := 0; k < 2; k++ {
		set.add(0, Course, 0, allGroups)
	}
	set.add(1, Course, 1, allGroups)
	set.add(1, Course, 3, allGroups)
	set.add(2, Course, 2, allGroups)
	set.add(2, Course, 3, allGroups)
	set.add(3, Course, 2, allGroups)
	set.add(4, Course, 0, allGroups)
	set.add(5, Course, 1, allGroups)
	// Seminars: one per group for every subject.
	for g := 0; g < 6; g++ {
		set.add(0, Seminar, lo.Ternary(g < 3, 0, 2), []int{g})
	}
	for g := 0; g < 6; g++ {
		set.add(1, Seminar, lo.Ternary(g < 3, 1, 3), []int{g})
	}
	for g := 0; g < 6; g++ {
		set.add(2, Seminar, 2, []int{g})
	}
	for g := 0; g < 6; g++ {
		set.add(3, Seminar, 2, []int{g})
	}
	for g := 0; g < 6; g++ {
		set.add(4, Seminar, 0, []int{g})
	}
	for g := 0; g < 6; g++ {
		set.add(5, Seminar, lo.Ternary(g < 3, 1, 3), []int{g})
	}
	// Labs: Programming three per group, the rest two per group.
	for g := 0; g < 6; g++ {
		for k := 0; k < 3; k++ {
			profId := 3
			if k == 0 {
				profId = 1
			} else if k == 1 {
				profId = 2
			}
			set.add(1, Lab, profId, []int{g})
		}
	}
	for g := 0; g < 6; g++ {
		for k := 0; k < 2; k++ {
			set.add(2, Lab, lo.Ternary(k == 0, 2, 3), []int{g})
		}
	}
	for g := 0; g < 6; g++ {
		for k := 0; k < 2; k++ {
			set.add(3, Lab, lo.Ternary(k == 0, 1, 3), []int{g})
		}
	}
	for g := 0; g < 6; g++ {
		for k := 0; k < 2; k++ {
			set.add(5, Lab, lo.Ternary(k == 0, 1, 2), []int{g})
		}
	}
	inst.Activities = set.activities
	return inst
}
