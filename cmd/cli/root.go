package main

import (
	"github.com/limaJavier/routine/internal/config"
	"github.com/limaJavier/routine/internal/logger"
	"github.com/limaJavier/routine/pkg/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Configuration keys and the flags that override them
var flagKeys = map[string]string{
	"catalog":    "catalog",
	"log.level":  "log-level",
	"log.format": "log-format",
	"days":       "days",
	"periods":    "periods",
	"start_time": "start",
	"time_slots": "slots",
	"seed":       "seed",
	"output":     "out",
	"format":     "format",
}

// environment is built before any command runs
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *catalog.Store
}

func newRootCommand() *cobra.Command {
	env := &environment{}
	var configFile string

	root := &cobra.Command{
		Use:           "routine",
		Short:         "Class routine maker",
		Long:          "Keeps a catalog of subjects, teachers and classes and generates conflict-free weekly routines from it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := config.NewViper(configFile)
			for key, name := range flagKeys {
				if flag := cmd.Flags().Lookup(name); flag != nil {
					if err := v.BindPFlag(key, flag); err != nil {
						return err
					}
				}
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Log)
			if err != nil {
				return err
			}

			env.cfg = cfg
			env.logger = log
			env.store = catalog.NewStore(cfg.Catalog, log)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.logger != nil {
				_ = env.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default .routine.yaml)")
	root.PersistentFlags().String("catalog", config.DefaultFile, "catalog document (.json or .toml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "console", "log format: console or json")

	root.AddCommand(
		newSubjectCommand(env),
		newTeacherCommand(env),
		newClassCommand(env),
		newPreviewCommand(env),
		newGenerateCommand(env),
	)
	return root
}

// Adds the flags describing the slot grid of a run
func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("days", nil, "working days, in order (default Monday to Friday)")
	cmd.Flags().Int("periods", 0, "periods per day, between 1 and 12 (default 6)")
	cmd.Flags().String("start", "", "start time of the first period as HH:MM (default 08:30)")
	cmd.Flags().StringSlice("slots", nil, "explicit time slot labels; overrides --periods and --start")
}
