package sim

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/pressim/internal/dynamo"
	"github.com/san-kum/pressim/internal/physics"
)

// Simulator advances a density field under its own pressure. It owns the
// field and a scratch pressure buffer; it is not safe for concurrent use.
type Simulator struct {
	cfg       dynamo.Config
	grid      []float64
	initial   dynamo.Field
	density   dynamo.Field
	pressure  dynamo.Field
	energy    []float64
	step      int
	metrics   []Metric
	observers []Observer
}

type options struct {
	initial dynamo.Field
	rng     *rand.Rand
}

// Option customises how New builds the initial density.
type Option func(*options)

// WithInitial replaces the Gaussian-plus-noise profile with f.
func WithInitial(f dynamo.Field) Option {
	return func(o *options) { o.initial = f }
}

// WithRand supplies the noise generator instead of one seeded from cfg.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

func New(cfg dynamo.Config, opts ...Option) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	grid := physics.Linspace(cfg.Lo, cfg.Hi, cfg.N)

	var initial dynamo.Field
	if o.initial != nil {
		if len(o.initial) != cfg.N {
			return nil, fmt.Errorf("initial density has %d points, grid has %d: %w",
				len(o.initial), cfg.N, dynamo.ErrDimensionMismatch)
		}
		if !o.initial.IsValid() {
			return nil, dynamo.ErrInvalidState
		}
		initial = o.initial.Clone()
	} else {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(cfg.Seed))
		}
		initial = physics.InitialDensity(grid, cfg.Width, cfg.Noise, rng)
	}

	return &Simulator{
		cfg:       cfg,
		grid:      grid,
		initial:   initial,
		density:   initial.Clone(),
		pressure:  make(dynamo.Field, cfg.N),
		energy:    make([]float64, 0, cfg.Steps),
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Config() dynamo.Config { return s.cfg }

// Grid returns the positions of the density samples.
func (s *Simulator) Grid() []float64 {
	g := make([]float64, len(s.grid))
	copy(g, s.grid)
	return g
}

// Density returns a copy of the current field.
func (s *Simulator) Density() dynamo.Field { return s.density.Clone() }

// Energy returns the history recorded so far.
func (s *Simulator) Energy() []float64 {
	h := make([]float64, len(s.energy))
	copy(h, s.energy)
	return h
}

// StepsTaken is the number of completed iterations.
func (s *Simulator) StepsTaken() int { return s.step }

// Done reports whether the configured number of steps has been reached.
func (s *Simulator) Done() bool { return s.step >= s.cfg.Steps }

// Step performs one update I += lr·P, clamps to the floor and returns the
// new energy. Step keeps working past cfg.Steps; Run stops there.
func (s *Simulator) Step() float64 {
	physics.PressureInto(s.pressure, s.density)
	for i := range s.density {
		s.density[i] += s.cfg.LR * s.pressure[i]
	}
	physics.Clamp(s.density, s.cfg.Floor)

	e := physics.Energy(s.density)
	s.energy = append(s.energy, e)

	for _, m := range s.metrics {
		m.Observe(s.density, s.step)
	}
	for _, obs := range s.observers {
		obs.OnStep(s.density, s.step, e)
	}

	s.step++
	return e
}

// Run completes the remaining steps and returns the full result.
func (s *Simulator) Run() *dynamo.Result {
	for !s.Done() {
		s.Step()
	}

	result := &dynamo.Result{
		Energy:     s.Energy(),
		Final:      s.Density(),
		StepsTaken: s.step,
		Metrics:    make(map[string]float64, len(s.metrics)),
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	return result
}

// Reset restores the initial density and clears history and metrics.
func (s *Simulator) Reset() {
	copy(s.density, s.initial)
	s.energy = s.energy[:0]
	s.step = 0
	for _, m := range s.metrics {
		m.Reset()
	}
}

// Simulate runs cfg with the default initial profile and returns the
// energy history.
func Simulate(cfg dynamo.Config) ([]float64, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return s.Run().Energy, nil
}
