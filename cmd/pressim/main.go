package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/pressim/internal/config"
	"github.com/san-kum/pressim/internal/logging"
	"github.com/san-kum/pressim/internal/metrics"
	"github.com/san-kum/pressim/internal/report"
	"github.com/san-kum/pressim/internal/sim"
	"github.com/san-kum/pressim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	n          int
	steps      int
	lr         float64
	seed       int64
	noise      float64
	configFile string
	preset     string
	plot       bool
	summary    bool
	logLevel   string
	frameRate  int
)

// main runs the default simulation when invoked without a subcommand and
// exits with status 1 on any error.
func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pressim",
		Short:         "informational pressure simulation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and print the energy report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, stdout, stderr)
		},
	}
	addSimFlags(runCmd)
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot the energy trace")
	runCmd.Flags().BoolVar(&summary, "summary", false, "print a summary of the energy trace")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "run simulation with live visualization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return watchSimulation(cmd, stderr)
		},
	}
	addSimFlags(watchCmd)
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, "presets:")
			for _, p := range config.ListPresets() {
				fmt.Fprintf(stdout, "  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, logging.Discard())
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = stdout.Write(data)
			return err
		},
	}
	addSimFlags(configCmd)

	rootCmd.AddCommand(runCmd, watchCmd, presetsCmd, configCmd)
	return rootCmd
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&n, "n", 400, "grid size")
	cmd.Flags().IntVar(&steps, "steps", 1500, "number of steps")
	cmd.Flags().Float64Var(&lr, "lr", 0.05, "step size")
	cmd.Flags().Int64Var(&seed, "seed", 42, "noise seed")
	cmd.Flags().Float64Var(&noise, "noise", 0.2, "noise amplitude")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file, environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, logger *slog.Logger) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
		logger.Debug("applied preset", "preset", preset)
	}

	if configFile != "" {
		fileCfg, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
		logger.Debug("loaded config file", "path", configFile)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		cfg.N = n
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("lr") {
		cfg.LR = lr
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("noise") {
		cfg.Initial.Noise = noise
	}
	if flags.Changed("plot") {
		cfg.Report.Plot = plot
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bootstrapLogger honours --log-level and PRESSIM_LOG_LEVEL before the
// full configuration has been resolved.
func bootstrapLogger(stderr io.Writer) *slog.Logger {
	level := logLevel
	if level == "" {
		level = os.Getenv(config.EnvLogLevel)
	}
	return logging.NewLogger(level, stderr)
}

func runSimulation(cmd *cobra.Command, stdout, stderr io.Writer) error {
	cfg, err := resolveConfig(cmd, bootstrapLogger(stderr))
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, stderr)

	simCfg := cfg.Sim()
	s, err := sim.New(simCfg)
	if err != nil {
		return err
	}
	s.AddMetric(metrics.NewEnergyChange())
	s.AddMetric(metrics.NewMass())
	s.AddMetric(metrics.NewFloorHits(simCfg.Floor))

	logger.Info("running simulation", "n", simCfg.N, "steps", simCfg.Steps, "lr", simCfg.LR, "seed", simCfg.Seed)
	start := time.Now()
	result := s.Run()
	logger.Info("simulation completed",
		"elapsed", time.Since(start),
		"steps", result.StepsTaken,
		"energy_change", result.Metrics["energy_change"],
		"mass", result.Metrics["mass"],
		"floor_hits", result.Metrics["floor_hits"],
	)

	if err := report.Print(stdout, result.Energy, cfg.Report.Head, cfg.Report.Tail); err != nil {
		return err
	}
	if summary {
		if err := report.Summary(stdout, result.Energy); err != nil {
			return err
		}
	}
	if cfg.Report.Plot {
		return report.Plot(stdout, result.Energy)
	}
	return nil
}

func watchSimulation(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := resolveConfig(cmd, bootstrapLogger(stderr))
	if err != nil {
		return err
	}

	s, err := sim.New(cfg.Sim())
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewWatch(s, frameRate))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
