package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/limaJavier/routine/internal/config"
	"github.com/limaJavier/routine/internal/watch"
	"github.com/limaJavier/routine/pkg/catalog"
	"github.com/limaJavier/routine/pkg/export"
	"github.com/limaJavier/routine/pkg/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Output path meaning standard output
const stdoutPath = "-"

func newGenerateCommand(env *environment) *cobra.Command {
	var watchCatalog bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a routine for every class and export it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func() error {
				c, err := env.store.Load()
				if err != nil {
					return err
				}
				return generate(c, env.cfg, env.logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
			}

			if !watchCatalog {
				return run()
			}
			if err := run(); err != nil {
				env.logger.Error("cannot generate routine", zap.Error(err))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watch.File(ctx, env.store.Path(), env.logger, run)
		},
	}

	addGridFlags(cmd)
	cmd.Flags().Int64("seed", 0, "random seed; 0 picks a different routine on every run")
	cmd.Flags().StringP("out", "o", "", "output file, or - for standard output (default class_routines.csv)")
	cmd.Flags().StringP("format", "f", "", fmt.Sprintf("export format: %v (default csv)", strings.Join(export.Formats(), ", ")))
	cmd.Flags().BoolVarP(&watchCatalog, "watch", "w", false, "regenerate every time the catalog document changes")
	return cmd
}

// Builds, verifies and exports a routine for the catalog. A summary of skipped placements is written into summary.
func generate(c *catalog.Catalog, cfg *config.Config, logger *zap.Logger, stdout, summary io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	grid, err := cfg.Grid()
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(cfg.Format)
	if err != nil {
		return err
	}

	demand := c.Demand()
	scheduler := model.NewGreedyScheduler(grid, model.NewRandomSource(cfg.Seed), logger)
	routine, err := scheduler.Build(demand)
	if err != nil {
		return err
	}
	if !scheduler.Verify(routine, demand) {
		return errors.New("generated routine violates its constraints")
	}

	if err := writeRoutine(exporter, routine, cfg.Output, stdout); err != nil {
		return err
	}
	if cfg.Output != stdoutPath {
		logger.Info("routine exported", zap.String("path", cfg.Output), zap.String("format", cfg.Format))
	}

	printSummary(summary, routine)
	return nil
}

func writeRoutine(exporter export.Exporter, routine model.Routine, path string, stdout io.Writer) error {
	if path == stdoutPath {
		return exporter.Export(stdout, routine)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create \"%v\": %w", path, err)
	}
	if err := exporter.Export(file, routine); err != nil {
		file.Close()
		return fmt.Errorf("cannot export routine: %w", err)
	}
	return file.Close()
}

// Skipped placements are only reported; the routine is still exported
func printSummary(w io.Writer, routine model.Routine) {
	counts := routine.SkipCounts()
	if len(counts) == 0 {
		return
	}

	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	fmt.Fprintf(w, "%v placements skipped (density %.2f):\n", len(routine.Skipped()), routine.Density())
	for _, class := range classes {
		fmt.Fprintf(w, "  %v: %v\n", class, counts[class])
	}
}
