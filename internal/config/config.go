package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/pressim/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const DefaultLogLevel = "info"

// Environment variables consulted by ApplyEnv.
const (
	EnvN        = "PRESSIM_N"
	EnvSteps    = "PRESSIM_STEPS"
	EnvLR       = "PRESSIM_LR"
	EnvSeed     = "PRESSIM_SEED"
	EnvLogLevel = "PRESSIM_LOG_LEVEL"
)

type Config struct {
	N        int          `yaml:"n"`
	Steps    int          `yaml:"steps"`
	LR       float64      `yaml:"lr"`
	Seed     int64        `yaml:"seed"`
	Initial  InitConfig   `yaml:"initial"`
	Grid     GridConfig   `yaml:"grid"`
	Floor    float64      `yaml:"floor"`
	Report   ReportConfig `yaml:"report"`
	LogLevel string       `yaml:"log_level"`
}

type InitConfig struct {
	Width float64 `yaml:"width"`
	Noise float64 `yaml:"noise"`
}

type GridConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

type ReportConfig struct {
	Head int  `yaml:"head"`
	Tail int  `yaml:"tail"`
	Plot bool `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		N:     dynamo.DefaultN,
		Steps: dynamo.DefaultSteps,
		LR:    dynamo.DefaultLR,
		Seed:  dynamo.DefaultSeed,
		Initial: InitConfig{
			Width: dynamo.DefaultWidth,
			Noise: dynamo.DefaultNoise,
		},
		Grid: GridConfig{
			Lo: dynamo.DefaultLo,
			Hi: dynamo.DefaultHi,
		},
		Floor: dynamo.DefaultFloor,
		Report: ReportConfig{
			Head: 10,
			Tail: 10,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over base, which is modified and returned.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// ApplyEnv overrides fields from PRESSIM_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvN); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvN, err)
		}
		c.N = n
	}
	if v := os.Getenv(EnvSteps); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSteps, err)
		}
		c.Steps = n
	}
	if v := os.Getenv(EnvLR); v != "" {
		lr, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLR, err)
		}
		c.LR = lr
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Sim converts the file-level configuration into the driver configuration.
func (c *Config) Sim() dynamo.Config {
	return dynamo.Config{
		N:     c.N,
		Steps: c.Steps,
		LR:    c.LR,
		Seed:  c.Seed,
		Noise: c.Initial.Noise,
		Lo:    c.Grid.Lo,
		Hi:    c.Grid.Hi,
		Width: c.Initial.Width,
		Floor: c.Floor,
	}
}

func (c *Config) Validate() error {
	if c.Report.Head < 0 || c.Report.Tail < 0 {
		return &dynamo.ConfigError{Field: "report", Value: [2]int{c.Report.Head, c.Report.Tail}, Reason: "head and tail must be non-negative"}
	}
	return c.Sim().Validate()
}
