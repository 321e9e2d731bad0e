package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/limaJavier/routine/pkg/model"
	"github.com/spf13/viper"
)

const (
	EnvPrefix   = "ROUTINE"
	configName  = ".routine"
	configType  = "yaml"
	DefaultFile = "routine_data.json"
)

type Config struct {
	// Catalog document path
	Catalog   string   `mapstructure:"catalog" validate:"required"`
	Days      []string `mapstructure:"days" validate:"required,min=1,dive,required"`
	Periods   int      `mapstructure:"periods"`
	StartTime string   `mapstructure:"start_time"`
	// When set, used verbatim instead of deriving slots from StartTime and Periods
	TimeSlots []string `mapstructure:"time_slots"`
	// 0 seeds from the current time
	Seed   int64     `mapstructure:"seed"`
	Output string    `mapstructure:"output" validate:"required"`
	Format string    `mapstructure:"format" validate:"oneof=csv json pdf"`
	Log    LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// Builds a viper instance reading configFile, or .routine.yaml from the working or home directory, and ROUTINE_* variables
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog", DefaultFile)
	v.SetDefault("days", model.DefaultDays)
	v.SetDefault("periods", model.DefaultPeriods)
	v.SetDefault("start_time", model.DefaultStartTime)
	v.SetDefault("time_slots", []string{})
	v.SetDefault("seed", 0)
	v.SetDefault("output", "class_routines.csv")
	v.SetDefault("format", "csv")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Reads the configuration file, if any, and decodes the configuration
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Builds the slot grid described by the configuration
func (cfg Config) Grid() (model.Grid, error) {
	if len(cfg.TimeSlots) > 0 {
		return model.NewGridFromSlots(cfg.Days, cfg.TimeSlots)
	}
	return model.NewGrid(cfg.Days, cfg.StartTime, cfg.Periods)
}
