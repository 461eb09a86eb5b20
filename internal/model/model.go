// Package model holds the static description of a timetabling problem:
// buildings, rooms, subjects, professors, student groups, the activities
// derived from them and the travel times between buildings. Instances are
// read-only once built; solvers never mutate them.
package model

// Time grid: 5 days x 6 slots (2h each).
const (
	Days        = 5
	SlotsPerDay = 6
)

// UnassignedActivity marks a placement slot that has not been committed yet.
const UnassignedActivity = -1

type ActivityType int

const (
	Course ActivityType = iota
	Seminar
	Lab
)

var activityTypeNames = map[ActivityType]string{
	Course:  "COURSE",
	Seminar: "SEMINAR",
	Lab:     "LAB",
}

func (t ActivityType) String() string {
	if name, ok := activityTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

type Building struct {
	Id   int
	Name string
}

type Room struct {
	Id         int
	BuildingId int
	Name       string
	Capacity   int
	Type       ActivityType // Only activities of this type may be placed here
}

type Subject struct {
	Id           int
	Name         string
	CourseSlots  int // Number of 2h course sessions per week
	SeminarSlots int
	LabSlots     int
}

type Professor struct {
	Id              int
	Name            string
	CanTeachCourse  []int // Subject ids this professor can teach as courses
	CanTeachSeminar []int
	CanTeachLab     []int
}

type Group struct {
	Id       int
	Name     string
	Subjects []int
}

// Activity is one concrete 2-hour session to be placed exactly once. For
// courses GroupIds contains every group attending together; seminars and labs
// typically carry a single group id.
type Activity struct {
	Id        int
	SubjectId int
	Type      ActivityType
	ProfId    int
	GroupIds  []int
}

// ProblemInstance is the complete static input consumed by solvers.
// TravelTime[a][b] = minutes needed to move from building a to building b.
type ProblemInstance struct {
	Buildings  []Building
	Rooms      []Room
	Subjects   []Subject
	Professors []Professor
	Groups     []Group
	Activities []Activity
	TravelTime [][]int
}

// Placement records where one activity sits in the grid. ActivityId equals
// UnassignedActivity until the activity is committed. RoomIndex indexes into
// ProblemInstance.Rooms.
type Placement struct {
	ActivityId int
	Day        int
	Slot       int
	RoomIndex  int
}
