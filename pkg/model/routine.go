package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Assignment is the content of a routine cell; the zero value is an empty cell
type Assignment struct {
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
}

func (assignment Assignment) Empty() bool {
	return assignment.Subject == "" && assignment.Teacher == ""
}

// Label renders the assignment as "<Subject>\n(<Teacher>)", or "" if empty
func (assignment Assignment) Label() string {
	if assignment.Empty() {
		return ""
	}
	return fmt.Sprintf("%v\n(%v)", assignment.Subject, assignment.Teacher)
}

// Timetable is the grid of a single class. It holds a cell for every (day, slot) of the grid.
type Timetable struct {
	grid    Grid
	indexer indexer
	cells   []Assignment
}

func newTimetable(grid Grid) *Timetable {
	return &Timetable{
		grid:    grid,
		indexer: newIndexer(grid),
		cells:   make([]Assignment, grid.Cells()),
	}
}

// Returns the assignment at the given day and slot ordinals
func (timetable *Timetable) Cell(day, slot int) Assignment {
	return timetable.cells[timetable.indexer.Index(uint64(day), uint64(slot))]
}

// Returns the assignment at the given day and slot labels
func (timetable *Timetable) Lookup(day, slot string) (Assignment, bool) {
	dayIndex, okDay := timetable.grid.DayIndex(day)
	slotIndex, okSlot := timetable.grid.SlotIndex(slot)
	if !okDay || !okSlot {
		return Assignment{}, false
	}
	return timetable.Cell(dayIndex, slotIndex), true
}

func (timetable *Timetable) set(day, slot int, assignment Assignment) {
	timetable.cells[timetable.indexer.Index(uint64(day), uint64(slot))] = assignment
}

// Returns the number of non-empty cells
func (timetable *Timetable) Filled() int {
	return lo.CountBy(timetable.cells, func(assignment Assignment) bool { return !assignment.Empty() })
}

// Returns the timetable as day -> slot -> assignment, with an entry for every cell
func (timetable *Timetable) Days() map[string]map[string]Assignment {
	days := make(map[string]map[string]Assignment, len(timetable.grid.Days))
	for index, assignment := range timetable.cells {
		day, slot := timetable.indexer.Attributes(uint64(index))
		dayName, slotName := timetable.grid.Days[day], timetable.grid.Slots[slot]
		if _, ok := days[dayName]; !ok {
			days[dayName] = make(map[string]Assignment, len(timetable.grid.Slots))
		}
		days[dayName][slotName] = assignment
	}
	return days
}

// Routine is the outcome of a generation run
type Routine struct {
	RunId      string
	Grid       Grid
	Classes    []string
	Timetables map[string]*Timetable
	Placements []Placement
}

// Returns the placements that could not be made
func (routine Routine) Skipped() []Placement {
	return lo.Filter(routine.Placements, func(placement Placement, _ int) bool {
		return placement.Outcome == Skipped
	})
}

// Returns the number of skipped placements per class
func (routine Routine) SkipCounts() map[string]int {
	return lo.CountValuesBy(routine.Skipped(), func(placement Placement) string { return placement.Class })
}

// Returns the ratio of filled cells over all cells of all classes
func (routine Routine) Density() float64 {
	cells := int(routine.Grid.Cells()) * len(routine.Classes)
	if cells == 0 {
		return 0
	}
	filled := lo.SumBy(routine.Classes, func(class string) int { return routine.Timetables[class].Filled() })
	return float64(filled) / float64(cells)
}
