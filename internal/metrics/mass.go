package metrics

import "github.com/san-kum/pressim/internal/dynamo"

// Mass records Σ I of the latest field. The ring gradient sums to zero,
// so mass only moves once the clamp engages.
type Mass struct {
	name string
	mass float64
}

func NewMass() *Mass {
	return &Mass{name: "mass"}
}

func (m *Mass) Name() string {
	return m.name
}

func (m *Mass) Observe(f dynamo.Field, step int) {
	m.mass = f.Sum()
}

func (m *Mass) Value() float64 {
	return m.mass
}

func (m *Mass) Reset() {
	m.mass = 0
}
