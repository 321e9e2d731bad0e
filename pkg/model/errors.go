package model

import "fmt"

// InvalidTimeFormatError is returned when a start time is not in strict "HH:MM" 24-hour form
type InvalidTimeFormatError struct {
	Value string
	Err   error
}

func (err InvalidTimeFormatError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("invalid start time \"%v\", expected HH:MM: %v", err.Value, err.Err)
	}
	return fmt.Sprintf("invalid start time \"%v\", expected HH:MM", err.Value)
}

func (err InvalidTimeFormatError) Unwrap() error {
	return err.Err
}

// InvalidPeriodCountError is returned when the periods per day fall outside [1, MaxPeriods]
type InvalidPeriodCountError struct {
	Count int
}

func (err InvalidPeriodCountError) Error() string {
	return fmt.Sprintf("invalid period count %v: must be between 1 and %v", err.Count, MaxPeriods)
}

// MissingTeacherAssignmentError is returned when a class requires a subject nobody is qualified to teach
type MissingTeacherAssignmentError struct {
	Class   string
	Subject string
}

func (err MissingTeacherAssignmentError) Error() string {
	return fmt.Sprintf("subject \"%v\" required by class \"%v\" has no qualified teacher", err.Subject, err.Class)
}

// InvalidGridError is returned when the working days or the time slots cannot form a grid
type InvalidGridError struct {
	Reason string
}

func (err InvalidGridError) Error() string {
	return "invalid grid: " + err.Reason
}
