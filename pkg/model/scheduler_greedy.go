package model

import (
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type greedyScheduler struct {
	grid   Grid
	random RandomSource
	logger *zap.Logger
}

// Returns a scheduler that places subjects greedily and at random, without backtracking.
// Subjects that cannot be placed are skipped and reported in Routine.Placements.
func NewGreedyScheduler(grid Grid, random RandomSource, logger *zap.Logger) Scheduler {
	if random == nil {
		random = NewRandomSource(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &greedyScheduler{
		grid:   grid,
		random: random,
		logger: logger,
	}
}

func (scheduler *greedyScheduler) Build(demand Demand) (Routine, error) {
	if err := demand.Validate(); err != nil {
		return Routine{}, err
	}

	runId := uuid.NewString()
	logger := scheduler.logger.With(zap.String("run_id", runId))

	routine := Routine{
		RunId:      runId,
		Grid:       scheduler.grid,
		Classes:    append([]string(nil), demand.Classes...),
		Timetables: make(map[string]*Timetable, len(demand.Classes)),
		Placements: make([]Placement, 0),
	}
	availability := NewTeacherAvailability(scheduler.grid)

	// Classes and days are visited in order: the availability is shared, so earlier visits win contested slots
	for _, class := range demand.Classes {
		timetable := newTimetable(scheduler.grid)
		curriculum := demand.curriculum(class)
		if len(curriculum) == 0 {
			logger.Warn("class has an empty curriculum", zap.String("class", class))
		}

		for day := range scheduler.grid.Days {
			placements := scheduler.scheduleDay(class, day, curriculum, demand.Qualified, availability, timetable)
			routine.Placements = append(routine.Placements, placements...)
		}
		routine.Timetables[class] = timetable
	}

	skipped := routine.Skipped()
	for _, placement := range skipped {
		logger.Debug("subject skipped",
			zap.String("class", placement.Class),
			zap.String("day", placement.Day),
			zap.String("subject", placement.Subject),
			zap.String("reason", string(placement.Reason)),
		)
	}
	logger.Info("routine generated",
		zap.Int("classes", len(routine.Classes)),
		zap.Int("placed", len(routine.Placements)-len(skipped)),
		zap.Int("skipped", len(skipped)),
		zap.Float64("density", routine.Density()),
	)

	return routine, nil
}

func (scheduler *greedyScheduler) Verify(routine Routine, demand Demand) bool {
	if err := verify(routine, demand); err != nil {
		scheduler.logger.Warn("routine verification failed", zap.String("run_id", routine.RunId), zap.Error(err))
		return false
	}
	return true
}

// Places as many subjects as possible into the class' day, committing every placement into availability
func (scheduler *greedyScheduler) scheduleDay(
	class string,
	day int,
	curriculum []string,
	qualified map[string][]string,
	availability *TeacherAvailability,
	timetable *Timetable,
) []Placement {
	dayName := scheduler.grid.Days[day]

	available := make([]int, len(scheduler.grid.Slots))
	for slot := range available {
		available[slot] = slot
	}

	subjects := append([]string(nil), curriculum...)
	scheduler.random.Shuffle(len(subjects), func(i, j int) {
		subjects[i], subjects[j] = subjects[j], subjects[i]
	})

	placements := make([]Placement, 0, len(subjects))
	for i, subject := range subjects {
		if len(available) == 0 {
			for _, remaining := range subjects[i:] {
				placements = append(placements, Placement{
					Outcome: Skipped,
					Class:   class,
					Day:     dayName,
					Subject: remaining,
					Reason:  SlotsExhausted,
				})
			}
			break
		}

		teachers := qualified[subject]
		teacher := teachers[scheduler.random.Intn(len(teachers))]

		candidates := make([]int, 0, len(available))
		for _, slot := range available {
			if availability.Available(teacher, day, slot) {
				candidates = append(candidates, slot)
			}
		}

		if len(candidates) == 0 {
			placements = append(placements, Placement{
				Outcome: Skipped,
				Class:   class,
				Day:     dayName,
				Subject: subject,
				Teacher: teacher,
				Reason:  TeacherUnavailable,
			})
			continue
		}

		slot := candidates[scheduler.random.Intn(len(candidates))]
		timetable.set(day, slot, Assignment{Subject: subject, Teacher: teacher})
		availability.Commit(teacher, day, slot)
		available = slices.DeleteFunc(available, func(candidate int) bool { return candidate == slot })

		placements = append(placements, Placement{
			Outcome: Placed,
			Class:   class,
			Day:     dayName,
			Subject: subject,
			Slot:    scheduler.grid.Slots[slot],
			Teacher: teacher,
		})
	}

	return placements
}
