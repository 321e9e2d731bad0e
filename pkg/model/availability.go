package model

import (
	"slices"

	"github.com/samber/lo"
)

// TeacherAvailability records which teachers are already committed at every (day, slot) of a run.
// It is shared by every class of the run and is not safe for concurrent use.
type TeacherAvailability struct {
	indexer indexer
	busy    []map[string]bool
}

func NewTeacherAvailability(grid Grid) *TeacherAvailability {
	busy := make([]map[string]bool, grid.Cells())
	for i := range busy {
		busy[i] = make(map[string]bool)
	}
	return &TeacherAvailability{
		indexer: newIndexer(grid),
		busy:    busy,
	}
}

// Checks whether the teacher is free at the given day and slot
func (availability *TeacherAvailability) Available(teacher string, day, slot int) bool {
	return !availability.busy[availability.indexer.Index(uint64(day), uint64(slot))][teacher]
}

// Marks the teacher busy at the given day and slot
func (availability *TeacherAvailability) Commit(teacher string, day, slot int) {
	availability.busy[availability.indexer.Index(uint64(day), uint64(slot))][teacher] = true
}

// Returns the teachers committed at the given day and slot, sorted by name
func (availability *TeacherAvailability) Teachers(day, slot int) []string {
	teachers := lo.Keys(availability.busy[availability.indexer.Index(uint64(day), uint64(slot))])
	slices.Sort(teachers)
	return teachers
}
