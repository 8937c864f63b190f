package metrics

import "github.com/san-kum/pressim/internal/dynamo"

// Energy records Σ I² of the most recently observed field.
type Energy struct {
	name   string
	energy float64
}

func NewEnergy() *Energy {
	return &Energy{name: "energy"}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) Observe(f dynamo.Field, step int) {
	e.energy = f.SumSquares()
}

func (e *Energy) Value() float64 {
	return e.energy
}

func (e *Energy) Reset() {
	e.energy = 0
}

// EnergyChange tracks the relative change of energy from the first
// observed step to the latest one.
type EnergyChange struct {
	name    string
	initial float64
	current float64
	samples int
}

func NewEnergyChange() *EnergyChange {
	return &EnergyChange{name: "energy_change"}
}

func (e *EnergyChange) Name() string { return e.name }

func (e *EnergyChange) Observe(f dynamo.Field, step int) {
	energy := f.SumSquares()
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++
}

func (e *EnergyChange) Value() float64 {
	if e.samples == 0 || e.initial == 0 {
		return 0
	}
	return (e.current - e.initial) / e.initial
}

func (e *EnergyChange) Reset() {
	e.initial = 0
	e.current = 0
	e.samples = 0
}
