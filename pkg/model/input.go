package model

import (
	"fmt"

	"github.com/samber/lo"
)

// Demand is the input of a generation run
type Demand struct {
	// Classes in scheduling order; earlier classes win contested slots
	Classes []string
	// Required subjects of every class
	Curricula map[string][]string
	// Teachers qualified to teach every subject
	Qualified map[string][]string
}

// Checks that classes are unique and that every subject required by a class has at least one qualified teacher
func (demand Demand) Validate() error {
	if duplicates := lo.FindDuplicates(demand.Classes); len(duplicates) > 0 {
		return fmt.Errorf("classes must be unique: %v", duplicates)
	}
	for _, class := range demand.Classes {
		for _, subject := range demand.Curricula[class] {
			if len(demand.Qualified[subject]) == 0 {
				return MissingTeacherAssignmentError{Class: class, Subject: subject}
			}
		}
	}
	return nil
}

// Returns the curriculum of the class with duplicated subjects removed
func (demand Demand) curriculum(class string) []string {
	return lo.Uniq(demand.Curricula[class])
}
