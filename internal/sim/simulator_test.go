package sim

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/pressim/internal/dynamo"
	"github.com/san-kum/pressim/internal/metrics"
)

func smallConfig(n, steps int, lr float64) dynamo.Config {
	cfg := dynamo.DefaultConfig()
	cfg.N = n
	cfg.Steps = steps
	cfg.LR = lr
	return cfg
}

func ones(n int) dynamo.Field {
	f := make(dynamo.Field, n)
	for i := range f {
		f[i] = 1
	}
	return f
}

func TestSimulateDefaultLength(t *testing.T) {
	hist, err := Simulate(dynamo.DefaultConfig())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if len(hist) != dynamo.DefaultSteps {
		t.Errorf("expected %d energy values, got %d", dynamo.DefaultSteps, len(hist))
	}
	for i, e := range hist {
		if math.IsNaN(e) || math.IsInf(e, 0) || e <= 0 {
			t.Fatalf("step %d: energy %v is not a positive finite number", i, e)
		}
	}
}

func TestSimulateLength(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		steps int
	}{
		{"zero steps", 10, 0},
		{"one step", 10, 1},
		{"small grid", 2, 25},
		{"many steps", 50, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist, err := Simulate(smallConfig(tt.n, tt.steps, 0.05))
			if err != nil {
				t.Fatalf("simulate failed: %v", err)
			}
			if len(hist) != tt.steps {
				t.Errorf("expected %d values, got %d", tt.steps, len(hist))
			}
		})
	}
}

func TestZeroStepsIsEmpty(t *testing.T) {
	hist, err := Simulate(smallConfig(10, 0, 0.05))
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if hist == nil || len(hist) != 0 {
		t.Errorf("expected empty non-nil history, got %v", hist)
	}
}

func TestClampInvariant(t *testing.T) {
	cfg := smallConfig(64, 400, 0.5)
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	violations := 0
	s.AddObserver(ObserverFunc(func(f dynamo.Field, step int, energy float64) {
		for _, v := range f {
			if v < cfg.Floor {
				violations++
			}
		}
	}))
	s.Run()

	if violations != 0 {
		t.Errorf("found %d elements below the floor", violations)
	}
}

func TestClampRaisesNegativeValues(t *testing.T) {
	// A spike next to near-zero cells drives its left neighbour negative.
	initial := dynamo.Field{0, 0, 0, 10}
	s, err := New(smallConfig(4, 1, 1.0), WithInitial(initial))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	s.Step()

	d := s.Density()
	if d[2] != dynamo.DefaultFloor {
		t.Errorf("expected clamped value %g, got %g", dynamo.DefaultFloor, d[2])
	}
	if d.Min() < dynamo.DefaultFloor {
		t.Errorf("min %g below floor", d.Min())
	}
}

func TestUniformDensityIsStationary(t *testing.T) {
	s, err := New(smallConfig(10, 1, 0.05), WithInitial(ones(10)))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	result := s.Run()

	if len(result.Energy) != 1 {
		t.Fatalf("expected 1 energy value, got %d", len(result.Energy))
	}
	if result.Energy[0] != 10.0 {
		t.Errorf("expected energy 10, got %v", result.Energy[0])
	}
}

func TestZeroStepSizeKeepsField(t *testing.T) {
	initial := dynamo.Field{0.25, 1.5, 3, 0.75}
	s, err := New(smallConfig(4, 3, 0.0), WithInitial(initial))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	result := s.Run()

	want := initial.SumSquares()
	for i, e := range result.Energy {
		if e != want {
			t.Errorf("step %d: expected energy %v, got %v", i, want, e)
		}
	}
	for i := range initial {
		if result.Final[i] != initial[i] {
			t.Errorf("element %d changed: %v -> %v", i, initial[i], result.Final[i])
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := smallConfig(100, 200, 0.05)
	cfg.Noise = 0

	a, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	b, err := Simulate(cfg)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSeededNoiseIsReproducible(t *testing.T) {
	cfg := smallConfig(50, 20, 0.05)

	a, _ := Simulate(cfg)
	b, _ := Simulate(cfg)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("step %d differs with identical seed: %v vs %v", i, a[i], b[i])
		}
	}

	cfg.Seed = 7
	c, _ := Simulate(cfg)
	if a[0] == c[0] {
		t.Error("expected a different trace for a different seed")
	}
}

func TestWithRand(t *testing.T) {
	cfg := smallConfig(20, 5, 0.05)

	s1, err := New(cfg, WithRand(rand.New(rand.NewSource(cfg.Seed))))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	s2, err := New(cfg)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	d1, d2 := s1.Density(), s2.Density()
	for i := range d1 {
		if d1[i] != d2[i] {
			t.Fatalf("element %d differs: %v vs %v", i, d1[i], d2[i])
		}
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  dynamo.Config
	}{
		{"zero n", smallConfig(0, 10, 0.05)},
		{"single point", smallConfig(1, 10, 0.05)},
		{"negative n", smallConfig(-5, 10, 0.05)},
		{"negative steps", smallConfig(10, -1, 0.05)},
		{"negative lr", smallConfig(10, 10, -0.1)},
		{"nan lr", smallConfig(10, 10, math.NaN())},
		{"nan width", func() dynamo.Config { c := smallConfig(10, 10, 0.05); c.Width = math.NaN(); return c }()},
		{"infinite noise", func() dynamo.Config { c := smallConfig(10, 10, 0.05); c.Noise = math.Inf(1); return c }()},
		{"infinite lo", func() dynamo.Config { c := smallConfig(10, 10, 0.05); c.Lo = math.Inf(-1); return c }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Simulate(tt.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, dynamo.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestInitialLengthMismatch(t *testing.T) {
	_, err := New(smallConfig(5, 1, 0.05), WithInitial(ones(4)))
	if !errors.Is(err, dynamo.ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSimulatorMetrics(t *testing.T) {
	s, err := New(smallConfig(10, 4, 0.05), WithInitial(ones(10)))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	s.AddMetric(metrics.NewEnergy())
	s.AddMetric(metrics.NewMass())

	result := s.Run()

	if got := result.Metrics["energy"]; got != 10 {
		t.Errorf("expected energy metric 10, got %v", got)
	}
	if got := result.Metrics["mass"]; got != 10 {
		t.Errorf("expected mass metric 10, got %v", got)
	}
	if result.StepsTaken != 4 {
		t.Errorf("expected 4 steps, got %d", result.StepsTaken)
	}
}

func TestMassConservedWithoutClamp(t *testing.T) {
	cfg := smallConfig(100, 50, 0.05)
	cfg.Noise = 0
	cfg.Floor = 1e-300

	s, err := New(cfg)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	before := s.Density().Sum()
	result := s.Run()

	if math.Abs(result.Final.Sum()-before) > 1e-9 {
		t.Errorf("mass drifted: %v -> %v", before, result.Final.Sum())
	}
}

func TestReset(t *testing.T) {
	s, err := New(smallConfig(30, 10, 0.05))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	first := s.Run().Energy

	s.Reset()
	if s.StepsTaken() != 0 || len(s.Energy()) != 0 {
		t.Fatal("reset did not clear history")
	}

	second := s.Run().Energy
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("step %d differs after reset: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestGrid(t *testing.T) {
	s, err := New(smallConfig(5, 0, 0.05))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	grid := s.Grid()
	want := []float64{-4, -2, 0, 2, 4}
	for i := range want {
		if math.Abs(grid[i]-want[i]) > 1e-12 {
			t.Errorf("grid[%d] = %v, want %v", i, grid[i], want[i])
		}
	}
}
