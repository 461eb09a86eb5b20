// Package format renders solved timetables from each group's point of view.
// Rendering is read-only: nothing here feeds back into the model or the
// solvers.
package format

import (
	"fmt"
	"slices"
	"strings"

	"github.com/limaJavier/timetabling-csp/internal/model"
	"github.com/samber/lo"
)

var dayNames = [model.Days]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var slotRanges = [model.SlotsPerDay]string{
	"08:00-10:00",
	"10:00-12:00",
	"12:00-14:00",
	"14:00-16:00",
	"16:00-18:00",
	"18:00-20:00",
}

// groupSlot is one resolved table row: placement coordinates plus the names
// to print, fallbacks already applied.
type groupSlot struct {
	day  int
	slot int

	time      string
	subject   string
	kind      string
	professor string
	room      string
}

// GroupSchedules renders one section per group: a rule, a title line and a
// small fixed-width table per day with the group's activities sorted by day
// then slot. Unresolvable references render as Unknown* placeholders so an
// incomplete solution is still inspectable.
func GroupSchedules(inst *model.ProblemInstance, placements []model.Placement) string {
	placementByAct := placementIndex(inst, placements)

	var builder strings.Builder
	for _, group := range inst.Groups {
		builder.WriteString(strings.Repeat("-", 40) + "\n")
		fmt.Fprintf(&builder, "Schedule for %v:\n", group.Name)

		rows := rowsForGroup(inst, placementByAct, group)
		if len(rows) == 0 {
			builder.WriteString("  (no activities)\n")
			continue
		}

		currentDay := -1
		for _, row := range rows {
			if row.day != currentDay {
				currentDay = row.day
				fmt.Fprintf(&builder, "\n  %v:\n", dayLabel(row.day))
				writeDayTableHeader(&builder)
			}
			fmt.Fprintf(&builder, "    %-11v | %-12v | %-8v | %-12v | %-8v\n",
				row.time, row.subject, row.kind, row.professor, row.room)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

// Entry is one scheduled activity from a group's point of view, shaped for
// JSON output.
type Entry struct {
	Day       string `json:"day"`
	Time      string `json:"time"`
	Subject   string `json:"subject"`
	Type      string `json:"type"`
	Professor string `json:"professor"`
	Room      string `json:"room"`
}

// GroupTimetables resolves the same per-group rows as GroupSchedules but as a
// data structure keyed by group name, for machine-readable output.
func GroupTimetables(inst *model.ProblemInstance, placements []model.Placement) map[string][]Entry {
	placementByAct := placementIndex(inst, placements)

	timetables := make(map[string][]Entry, len(inst.Groups))
	for _, group := range inst.Groups {
		rows := rowsForGroup(inst, placementByAct, group)
		timetables[group.Name] = lo.Map(rows, func(row groupSlot, _ int) Entry {
			return Entry{
				Day:       dayLabel(row.day),
				Time:      row.time,
				Subject:   row.subject,
				Type:      row.kind,
				Professor: row.professor,
				Room:      row.room,
			}
		})
	}
	return timetables
}

// placementIndex maps activity id to its committed placement; unassigned or
// out-of-range entries stay nil.
func placementIndex(inst *model.ProblemInstance, placements []model.Placement) []*model.Placement {
	placementByAct := make([]*model.Placement, len(inst.Activities))
	for i := range placements {
		p := &placements[i]
		if p.ActivityId >= 0 && p.ActivityId < len(placementByAct) {
			placementByAct[p.ActivityId] = p
		}
	}
	return placementByAct
}

// rowsForGroup collects the placed activities this group attends, sorted by
// day then slot.
func rowsForGroup(inst *model.ProblemInstance, placementByAct []*model.Placement, group model.Group) []groupSlot {
	var rows []groupSlot
	for _, act := range inst.Activities {
		if !slices.Contains(act.GroupIds, group.Id) {
			continue
		}
		if act.Id < 0 || act.Id >= len(placementByAct) || placementByAct[act.Id] == nil {
			continue
		}
		p := placementByAct[act.Id]

		row := groupSlot{
			day:       p.Day,
			slot:      p.Slot,
			time:      "UnknownTime",
			subject:   "UnknownSubject",
			kind:      typeLabel(act.Type),
			professor: "UnknownProf",
			room:      "UnknownRoom",
		}
		if p.Slot >= 0 && p.Slot < len(slotRanges) {
			row.time = slotRanges[p.Slot]
		}
		if act.SubjectId >= 0 && act.SubjectId < len(inst.Subjects) {
			row.subject = inst.Subjects[act.SubjectId].Name
		}
		if prof, ok := lo.Find(inst.Professors, func(pr model.Professor) bool { return pr.Id == act.ProfId }); ok {
			row.professor = prof.Name
		}
		if p.RoomIndex >= 0 && p.RoomIndex < len(inst.Rooms) {
			row.room = inst.Rooms[p.RoomIndex].Name
		}
		rows = append(rows, row)
	}

	slices.SortFunc(rows, func(a, b groupSlot) int {
		if a.day != b.day {
			return a.day - b.day
		}
		return a.slot - b.slot
	})
	return rows
}

func typeLabel(t model.ActivityType) string {
	switch t {
	case model.Course:
		return "Course"
	case model.Seminar:
		return "Seminar"
	case model.Lab:
		return "Lab"
	}
	return "Unknown"
}

func dayLabel(day int) string {
	if day >= 0 && day < len(dayNames) {
		return dayNames[day]
	}
	return "UnknownDay"
}

func writeDayTableHeader(builder *strings.Builder) {
	fmt.Fprintf(builder, "    %-11v | %-12v | %-8v | %-12v | %-8v\n",
		"Time", "Subject", "Type", "Professor", "Room")
	fmt.Fprintf(builder, "    %v-+-%v-+-%v-+-%v-+-%v\n",
		strings.Repeat("-", 11), strings.Repeat("-", 12), strings.Repeat("-", 8),
		strings.Repeat("-", 12), strings.Repeat("-", 8))
}
