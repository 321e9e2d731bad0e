package model

type Scheduler interface {
	Build(
		demand Demand,
	) (routine Routine, err error)

	Verify(
		routine Routine,
		demand Demand,
	) bool
}
