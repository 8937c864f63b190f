package dynamo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	DefaultN     = 400
	DefaultSteps = 1500
	DefaultLR    = 0.05
	DefaultSeed  = 42
	DefaultNoise = 0.2
	DefaultLo    = -4.0
	DefaultHi    = 4.0
	DefaultWidth = 3.0
	DefaultFloor = 1e-15
)

// Field is a scalar profile sampled on the grid.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsValid() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the total mass of the field.
func (f Field) Sum() float64 {
	return floats.Sum(f)
}

// SumSquares returns Σ f[i]², the energy of the field.
func (f Field) SumSquares() float64 {
	return floats.Dot(f, f)
}

// Min returns the smallest element, or +Inf for an empty field.
func (f Field) Min() float64 {
	if len(f) == 0 {
		return math.Inf(1)
	}
	return floats.Min(f)
}

// Config drives a single simulation run.
type Config struct {
	N     int     // grid points
	Steps int     // iterations
	LR    float64 // step size applied to the pressure
	Seed  int64   // noise generator seed
	Noise float64 // amplitude of the uniform noise term
	Lo    float64 // left end of the grid
	Hi    float64 // right end of the grid
	Width float64 // k in exp(-k·x²)
	Floor float64 // clamp lower bound
}

func DefaultConfig() Config {
	return Config{
		N:     DefaultN,
		Steps: DefaultSteps,
		LR:    DefaultLR,
		Seed:  DefaultSeed,
		Noise: DefaultNoise,
		Lo:    DefaultLo,
		Hi:    DefaultHi,
		Width: DefaultWidth,
		Floor: DefaultFloor,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate rejects configurations that would produce silent nonsense.
func (c Config) Validate() error {
	switch {
	case c.N < 2:
		return &ConfigError{Field: "n", Value: c.N, Reason: "grid needs at least 2 points"}
	case c.Steps < 0:
		return &ConfigError{Field: "steps", Value: c.Steps, Reason: "must be non-negative"}
	case !finite(c.LR) || c.LR < 0:
		return &ConfigError{Field: "lr", Value: c.LR, Reason: "must be a finite non-negative number"}
	case !finite(c.Noise) || c.Noise < 0:
		return &ConfigError{Field: "noise", Value: c.Noise, Reason: "must be a finite non-negative number"}
	case !finite(c.Width) || c.Width < 0:
		return &ConfigError{Field: "width", Value: c.Width, Reason: "must be a finite non-negative number"}
	case !finite(c.Lo) || !finite(c.Hi):
		return &ConfigError{Field: "range", Value: [2]float64{c.Lo, c.Hi}, Reason: "ends must be finite"}
	case !(c.Lo < c.Hi):
		return &ConfigError{Field: "range", Value: [2]float64{c.Lo, c.Hi}, Reason: "lo must be below hi"}
	case !finite(c.Floor) || !(c.Floor > 0):
		return &ConfigError{Field: "floor", Value: c.Floor, Reason: "must be a finite positive number"}
	}
	return nil
}

// Result is the outcome of a run.
type Result struct {
	Energy     []float64
	Final      Field
	StepsTaken int
	Metrics    map[string]float64
}
