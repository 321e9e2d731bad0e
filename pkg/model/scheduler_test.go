package model

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstChoiceSource keeps the curriculum order and always picks the first candidate
type firstChoiceSource struct{}

func (firstChoiceSource) Intn(int) int { return 0 }

func (firstChoiceSource) Shuffle(int, func(i, j int)) {}

func mustGrid(t *testing.T, days []string, periods int) Grid {
	grid, err := NewGrid(days, DefaultStartTime, periods)
	require.NoError(t, err)
	return grid
}

func randomDemand(random *rand.Rand) Demand {
	subjects := lo.Times(random.Intn(10)+1, func(i int) string { return fmt.Sprintf("subject-%v", i) })
	teachers := lo.Times(random.Intn(6)+1, func(i int) string { return fmt.Sprintf("teacher-%v", i) })
	classes := lo.Times(random.Intn(8)+1, func(i int) string { return fmt.Sprintf("class-%v", i) })

	qualified := make(map[string][]string)
	for _, subject := range subjects {
		qualified[subject] = lo.Uniq(lo.Times(random.Intn(3)+1, func(int) string { return teachers[random.Intn(len(teachers))] }))
	}
	curricula := make(map[string][]string)
	for _, class := range classes {
		curricula[class] = lo.Filter(subjects, func(string, int) bool { return random.Intn(2) == 0 })
	}

	return Demand{Classes: classes, Curricula: curricula, Qualified: qualified}
}

func TestGreedySchedulerInvariants(t *testing.T) {
	for seed := range int64(200) {
		//** Arrange
		random := rand.New(rand.NewSource(seed))
		demand := randomDemand(random)
		grid := mustGrid(t, DefaultDays[:random.Intn(len(DefaultDays))+1], random.Intn(MaxPeriods)+1)
		scheduler := NewGreedyScheduler(grid, random, nil)

		//** Act
		routine, err := scheduler.Build(demand)

		//** Assert
		require.NoError(t, err)
		assert.NoError(t, verify(routine, demand), "seed %v", seed)
		assert.True(t, scheduler.Verify(routine, demand))
	}
}

func TestGreedySchedulerFillsEveryCell(t *testing.T) {
	g := NewWithT(t)

	//** Arrange
	grid := mustGrid(t, []string{"Sunday", "Monday"}, 4)
	demand := Demand{
		Classes:   []string{"7A", "7B"},
		Curricula: map[string][]string{"7A": {"Math"}, "7B": {}},
		Qualified: map[string][]string{"Math": {"Alice"}},
	}

	//** Act
	routine, err := NewGreedyScheduler(grid, rand.New(rand.NewSource(1)), nil).Build(demand)

	//** Assert
	g.Expect(err).NotTo(HaveOccurred())
	for _, class := range demand.Classes {
		days := routine.Timetables[class].Days()
		g.Expect(days).To(HaveLen(len(grid.Days)))
		for _, day := range grid.Days {
			g.Expect(days).To(HaveKey(day))
			g.Expect(lo.Keys(days[day])).To(ConsistOf(grid.Slots))
		}
	}
	g.Expect(routine.Timetables["7B"].Filled()).To(BeZero())
}

func TestGreedySchedulerCapacitySaturation(t *testing.T) {
	for seed := range int64(100) {
		//** Arrange
		grid := mustGrid(t, []string{"Monday"}, 2)
		demand := Demand{
			Classes:   []string{"9C"},
			Curricula: map[string][]string{"9C": {"Math", "Physics", "History"}},
			Qualified: map[string][]string{"Math": {"Alice"}, "Physics": {"Bob"}, "History": {"Carol"}},
		}

		//** Act
		routine, err := NewGreedyScheduler(grid, rand.New(rand.NewSource(seed)), nil).Build(demand)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 2, routine.Timetables["9C"].Filled())
		skipped := routine.Skipped()
		require.Len(t, skipped, 1)
		assert.Equal(t, SlotsExhausted, skipped[0].Reason)
		assert.Equal(t, map[string]int{"9C": 1}, routine.SkipCounts())
	}
}

func TestGreedySchedulerTeacherContention(t *testing.T) {
	for seed := range int64(100) {
		//** Arrange
		grid := mustGrid(t, []string{"Monday"}, 1)
		demand := Demand{
			Classes:   []string{"10A", "10B"},
			Curricula: map[string][]string{"10A": {"Chemistry"}, "10B": {"Chemistry"}},
			Qualified: map[string][]string{"Chemistry": {"Dave"}},
		}

		//** Act
		routine, err := NewGreedyScheduler(grid, rand.New(rand.NewSource(seed)), nil).Build(demand)

		//** Assert
		require.NoError(t, err)
		assert.NoError(t, verify(routine, demand))
		// The first class always wins the contested slot
		assert.Equal(t, Assignment{Subject: "Chemistry", Teacher: "Dave"}, routine.Timetables["10A"].Cell(0, 0))
		assert.True(t, routine.Timetables["10B"].Cell(0, 0).Empty())
		skipped := routine.Skipped()
		require.Len(t, skipped, 1)
		assert.Equal(t, Placement{
			Outcome: Skipped,
			Class:   "10B",
			Day:     "Monday",
			Subject: "Chemistry",
			Teacher: "Dave",
			Reason:  TeacherUnavailable,
		}, skipped[0])
	}
}

func TestGreedySchedulerDeterministicSource(t *testing.T) {
	//** Arrange
	grid := mustGrid(t, []string{"Monday", "Tuesday"}, 2)
	demand := Demand{
		Classes:   []string{"A", "B"},
		Curricula: map[string][]string{"A": {"Math", "Physics"}, "B": {"Math", "Art"}},
		Qualified: map[string][]string{"Math": {"Alice", "Eve"}, "Physics": {"Bob"}, "Art": {"Alice"}},
	}

	//** Act
	routine, err := NewGreedyScheduler(grid, firstChoiceSource{}, nil).Build(demand)

	//** Assert
	require.NoError(t, err)
	for day := range grid.Days {
		assert.Equal(t, Assignment{Subject: "Math", Teacher: "Alice"}, routine.Timetables["A"].Cell(day, 0))
		assert.Equal(t, Assignment{Subject: "Physics", Teacher: "Bob"}, routine.Timetables["A"].Cell(day, 1))
		// Math takes the second slot of B, and Alice is already busy in the first one, so Art is skipped
		assert.True(t, routine.Timetables["B"].Cell(day, 0).Empty())
		assert.Equal(t, Assignment{Subject: "Math", Teacher: "Alice"}, routine.Timetables["B"].Cell(day, 1))
	}
	assert.Len(t, routine.Skipped(), 2)
	assert.Equal(t, 0.75, routine.Density())

	cell, ok := routine.Timetables["B"].Lookup("Tuesday", "09:30-10:30")
	assert.True(t, ok)
	assert.Equal(t, "Math\n(Alice)", cell.Label())
	_, ok = routine.Timetables["B"].Lookup("Sunday", "09:30-10:30")
	assert.False(t, ok)
}

func TestGreedySchedulerOrderDecidesContestedSlots(t *testing.T) {
	//** Arrange
	grid := mustGrid(t, []string{"Monday"}, 1)
	demand := Demand{
		Classes:   []string{"B", "A"},
		Curricula: map[string][]string{"A": {"Music"}, "B": {"Music"}},
		Qualified: map[string][]string{"Music": {"Frank"}},
	}

	//** Act
	routine, err := NewGreedyScheduler(grid, firstChoiceSource{}, nil).Build(demand)

	//** Assert
	require.NoError(t, err)
	assert.False(t, routine.Timetables["B"].Cell(0, 0).Empty())
	assert.True(t, routine.Timetables["A"].Cell(0, 0).Empty())
}

func TestGreedySchedulerSubjectsAreUniquePerDay(t *testing.T) {
	//** Arrange
	grid := mustGrid(t, []string{"Monday"}, 4)
	demand := Demand{
		Classes:   []string{"A"},
		Curricula: map[string][]string{"A": {"Math", "Math", "Math"}},
		Qualified: map[string][]string{"Math": {"Alice", "Eve"}},
	}

	for seed := range int64(20) {
		//** Act
		routine, err := NewGreedyScheduler(grid, rand.New(rand.NewSource(seed)), nil).Build(demand)

		//** Assert
		require.NoError(t, err)
		assert.Equal(t, 1, routine.Timetables["A"].Filled())
	}
}

func TestGreedySchedulerValidation(t *testing.T) {
	grid := mustGrid(t, DefaultDays, 3)

	t.Run("Missing teacher assignment", func(t *testing.T) {
		demand := Demand{
			Classes:   []string{"A", "B"},
			Curricula: map[string][]string{"A": {"Math"}, "B": {"Math", "Latin"}},
			Qualified: map[string][]string{"Math": {"Alice"}, "Latin": {}},
		}

		_, err := NewGreedyScheduler(grid, nil, nil).Build(demand)

		var target MissingTeacherAssignmentError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, MissingTeacherAssignmentError{Class: "B", Subject: "Latin"}, target)
	})

	t.Run("Duplicated classes", func(t *testing.T) {
		demand := Demand{
			Classes:   []string{"A", "A"},
			Curricula: map[string][]string{"A": {"Math"}},
			Qualified: map[string][]string{"Math": {"Alice"}},
		}

		_, err := NewGreedyScheduler(grid, nil, nil).Build(demand)

		assert.Error(t, err)
	})
}
