package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/limaJavier/routine/internal/config"
	"github.com/limaJavier/routine/internal/logger"
	"github.com/limaJavier/routine/pkg/catalog"
	"github.com/limaJavier/routine/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const resultsFile = "benchmark_results.csv"

type GridMetadata struct {
	Days    int
	Periods int
}

type BenchmarkResult struct {
	Grid GridMetadata
	Runs int
	// Average duration of a single generation in microseconds
	Duration    float64
	MinDensity  float64
	MeanDensity float64
	MaxDensity  float64
	// Average number of skipped placements per run, by reason
	SlotsExhausted     float64
	TeacherUnavailable float64
	Verified           bool
}

func main() {
	catalogPath := flag.String("catalog", config.DefaultFile, "catalog document to benchmark")
	runs := flag.Int("runs", 100, "generations per grid")
	flag.Parse()

	log, err := logger.New(config.LogConfig{Level: "info", Format: "console"})
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	c, err := catalog.NewStore(*catalogPath, log).Load()
	if err != nil {
		log.Fatal("cannot load catalog", zap.Error(err))
	} else if err := c.Validate(); err != nil {
		log.Fatal("invalid catalog", zap.Error(err))
	}
	demand := c.Demand()

	grids := getGrids()
	results := make([]BenchmarkResult, 0, len(grids))
	for _, metadata := range grids {
		log.Info("benchmarking", zap.Int("days", metadata.Days), zap.Int("periods", metadata.Periods), zap.Int("runs", *runs))

		result, err := measure(metadata, demand, *runs)
		if err != nil {
			log.Fatal("cannot benchmark grid", zap.Int("days", metadata.Days), zap.Int("periods", metadata.Periods), zap.Error(err))
		}
		results = append(results, result)
	}

	if err := toCsv(results, resultsFile); err != nil {
		log.Fatal("cannot write results", zap.Error(err))
	}
	log.Info("results written", zap.String("path", resultsFile))
}

func getGrids() []GridMetadata {
	grids := make([]GridMetadata, 0)
	for _, days := range []int{5, 6} {
		for _, periods := range []int{4, 6, 8, model.MaxPeriods} {
			grids = append(grids, GridMetadata{Days: days, Periods: periods})
		}
	}
	return grids
}

// Generates runs routines on the grid, seeding each run with its number
func measure(metadata GridMetadata, demand model.Demand, runs int) (BenchmarkResult, error) {
	days := slices.Concat(model.DefaultDays, []string{"Saturday", "Sunday"})[:metadata.Days]
	grid, err := model.NewGrid(days, model.DefaultStartTime, metadata.Periods)
	if err != nil {
		return BenchmarkResult{}, err
	}

	densities := make([]float64, 0, runs)
	skips := map[model.SkipReason]int{}
	verified := true
	var elapsed time.Duration

	for run := 1; run <= runs; run++ {
		scheduler := model.NewGreedyScheduler(grid, model.NewRandomSource(int64(run)), zap.NewNop())

		start := time.Now()
		routine, err := scheduler.Build(demand)
		elapsed += time.Since(start)
		if err != nil {
			return BenchmarkResult{}, err
		}

		verified = verified && scheduler.Verify(routine, demand)
		densities = append(densities, routine.Density())
		for _, placement := range routine.Skipped() {
			skips[placement.Reason]++
		}
	}

	return BenchmarkResult{
		Grid:               metadata,
		Runs:               runs,
		Duration:           float64(elapsed.Microseconds()) / float64(runs),
		MinDensity:         lo.Min(densities),
		MeanDensity:        lo.Mean(densities),
		MaxDensity:         lo.Max(densities),
		SlotsExhausted:     float64(skips[model.SlotsExhausted]) / float64(runs),
		TeacherUnavailable: float64(skips[model.TeacherUnavailable]) / float64(runs),
		Verified:           verified,
	}, nil
}

func toCsv(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	header := []string{"Days", "Periods", "Runs", "Duration(us)", "Min-Density", "Mean-Density", "Max-Density", "Slots-Exhausted", "Teacher-Unavailable", "Verified"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Grid.Days),
			fmt.Sprintf("%d", result.Grid.Periods),
			fmt.Sprintf("%d", result.Runs),
			fmt.Sprintf("%.1f", result.Duration),
			fmt.Sprintf("%.3f", result.MinDensity),
			fmt.Sprintf("%.3f", result.MeanDensity),
			fmt.Sprintf("%.3f", result.MaxDensity),
			fmt.Sprintf("%.2f", result.SlotsExhausted),
			fmt.Sprintf("%.2f", result.TeacherUnavailable),
			fmt.Sprintf("%v", result.Verified),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
