package model

type PlacementOutcome int

const (
	Placed PlacementOutcome = iota
	Skipped
)

func (outcome PlacementOutcome) String() string {
	if outcome == Placed {
		return "placed"
	}
	return "skipped"
}

type SkipReason string

const (
	// Every slot of the class' day was already taken
	SlotsExhausted SkipReason = "slots_exhausted"
	// The drawn teacher was busy in every slot still free for the class
	TeacherUnavailable SkipReason = "teacher_unavailable"
)

// Placement is the outcome of trying to schedule a subject for a class on a day
type Placement struct {
	Outcome PlacementOutcome
	Class   string
	Day     string
	Subject string
	// Set when the outcome is Placed
	Slot string
	// Drawn teacher; empty when skipped because the slots were exhausted
	Teacher string
	// Set when the outcome is Skipped
	Reason SkipReason
}
