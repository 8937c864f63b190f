package sim

import "github.com/san-kum/pressim/internal/dynamo"

// Metric accumulates a diagnostic over the steps of a run.
type Metric interface {
	Name() string
	Observe(f dynamo.Field, step int)
	Value() float64
	Reset()
}

// Observer is notified after every completed step. The field must not be
// retained or modified.
type Observer interface {
	OnStep(f dynamo.Field, step int, energy float64)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(f dynamo.Field, step int, energy float64)

func (fn ObserverFunc) OnStep(f dynamo.Field, step int, energy float64) {
	fn(f, step, energy)
}
