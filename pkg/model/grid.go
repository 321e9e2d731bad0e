package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	MaxPeriods       = 12
	DefaultPeriods   = 6
	DefaultStartTime = "08:30"

	startTimeLayout = "15:04"
	slotLayout      = "03:04"
)

var DefaultDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Grid is the ordered set of working days and time slots shared by every class of a run
type Grid struct {
	Days  []string
	Slots []string
}

// Builds a grid whose slots are derived from the start time and the number of periods
func NewGrid(days []string, startTime string, periods int) (Grid, error) {
	slots, err := BuildTimeSlots(startTime, periods)
	if err != nil {
		return Grid{}, err
	}
	return NewGridFromSlots(days, slots)
}

// Builds a grid using the given slot labels verbatim
func NewGridFromSlots(days []string, slots []string) (Grid, error) {
	if len(days) == 0 {
		return Grid{}, InvalidGridError{Reason: "at least one working day is required"}
	} else if len(slots) == 0 {
		return Grid{}, InvalidGridError{Reason: "at least one time slot is required"}
	}

	for _, labels := range [][]string{days, slots} {
		if lo.SomeBy(labels, func(label string) bool { return strings.TrimSpace(label) == "" }) {
			return Grid{}, InvalidGridError{Reason: "labels must not be empty"}
		}
		if duplicates := lo.FindDuplicates(labels); len(duplicates) > 0 {
			return Grid{}, InvalidGridError{Reason: fmt.Sprintf("duplicate labels %v", duplicates)}
		}
	}

	return Grid{
		Days:  append([]string(nil), days...),
		Slots: append([]string(nil), slots...),
	}, nil
}

// Derives consecutive one-hour slots starting at startTime ("HH:MM", 24-hour), each labeled "<start>-<end>" in 12-hour form
//
// Example:
//
//	slots, _ := model.BuildTimeSlots("08:30", 3)
//	// slots == []string{"08:30-09:30", "09:30-10:30", "10:30-11:30"}
func BuildTimeSlots(startTime string, periods int) ([]string, error) {
	start, err := parseStartTime(startTime)
	if err != nil {
		return nil, err
	}
	if periods <= 0 || periods > MaxPeriods {
		return nil, InvalidPeriodCountError{Count: periods}
	}

	slots := make([]string, 0, periods)
	for range periods {
		end := start.Add(time.Hour)
		slots = append(slots, start.Format(slotLayout)+"-"+end.Format(slotLayout))
		start = end
	}
	return slots, nil
}

func parseStartTime(value string) (time.Time, error) {
	// time.Parse accepts single digit hours, "HH:MM" is enforced beforehand
	if len(value) != len(startTimeLayout) || value[2] != ':' {
		return time.Time{}, InvalidTimeFormatError{Value: value}
	}
	start, err := time.Parse(startTimeLayout, value)
	if err != nil {
		return time.Time{}, InvalidTimeFormatError{Value: value, Err: err}
	}
	return start, nil
}

// Cells returns the number of (day, slot) cells in the grid
func (grid Grid) Cells() uint64 {
	return uint64(len(grid.Days) * len(grid.Slots))
}

func (grid Grid) DayIndex(day string) (int, bool) {
	index := lo.IndexOf(grid.Days, day)
	return index, index >= 0
}

func (grid Grid) SlotIndex(slot string) (int, bool) {
	index := lo.IndexOf(grid.Slots, slot)
	return index, index >= 0
}
