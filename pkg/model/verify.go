package model

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Checks that the routine:
// - Holds a timetable with every (day, slot) cell for each class of the demand
// - Never assigns a teacher to two classes at the same day and slot
// - Never schedules a subject twice for the same class and day
// - Only schedules subjects of the class' curriculum
// - Only assigns teachers qualified for the subject
func verify(routine Routine, demand Demand) error {
	grid := routine.Grid
	if !slices.Equal(routine.Classes, demand.Classes) {
		return fmt.Errorf("routine classes %v do not match demanded classes %v", routine.Classes, demand.Classes)
	}

	//** Initialize teacher-assistance
	teacherAssistance := make([]map[string]string, grid.Cells())
	for i := range teacherAssistance {
		teacherAssistance[i] = make(map[string]string)
	}
	indexer := newIndexer(grid)

	for _, class := range routine.Classes {
		timetable, ok := routine.Timetables[class]
		if !ok {
			return fmt.Errorf("class \"%v\" has no timetable", class)
		} else if uint64(len(timetable.cells)) != grid.Cells() {
			return fmt.Errorf("timetable of class \"%v\" has %v cells, expected %v", class, len(timetable.cells), grid.Cells())
		}
		curriculum := demand.Curricula[class]

		for day, dayName := range grid.Days {
			taught := make(map[string]bool)
			for slot, slotName := range grid.Slots {
				assignment := timetable.Cell(day, slot)
				if assignment.Empty() {
					continue
				}

				index := indexer.Index(uint64(day), uint64(slot))
				if other, ok := teacherAssistance[index][assignment.Teacher]; ok {
					return fmt.Errorf("teacher \"%v\" is assigned to classes \"%v\" and \"%v\" on %v at %v", assignment.Teacher, other, class, dayName, slotName)
				} else if taught[assignment.Subject] {
					return fmt.Errorf("subject \"%v\" is scheduled more than once for class \"%v\" on %v", assignment.Subject, class, dayName)
				} else if !lo.Contains(curriculum, assignment.Subject) {
					return fmt.Errorf("subject \"%v\" is not part of the curriculum of class \"%v\"", assignment.Subject, class)
				} else if !lo.Contains(demand.Qualified[assignment.Subject], assignment.Teacher) {
					return fmt.Errorf("teacher \"%v\" is not qualified for subject \"%v\"", assignment.Teacher, assignment.Subject)
				}

				teacherAssistance[index][assignment.Teacher] = class // Store teacher assistance
				taught[assignment.Subject] = true                    // Store subject taught
			}
		}
	}

	return nil
}
