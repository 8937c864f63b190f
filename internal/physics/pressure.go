package physics

import (
	"math"
	"math/rand"

	"github.com/san-kum/pressim/internal/dynamo"
	"gonum.org/v1/gonum/floats"
)

// Linspace returns n evenly spaced points over [lo, hi], both ends included.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		panic("physics: linspace needs at least 2 points")
	}
	return floats.Span(make([]float64, n), lo, hi)
}

// Gaussian samples exp(-width·x²) on the grid.
func Gaussian(grid []float64, width float64) dynamo.Field {
	f := make(dynamo.Field, len(grid))
	for i, x := range grid {
		f[i] = math.Exp(-width * x * x)
	}
	return f
}

// AddNoise adds amp·U[0,1) to every element, drawing from rng in index order.
func AddNoise(f dynamo.Field, amp float64, rng *rand.Rand) {
	if amp == 0 || rng == nil {
		return
	}
	for i := range f {
		f[i] += amp * rng.Float64()
	}
}

// InitialDensity builds the starting profile: a Gaussian bump plus noise.
func InitialDensity(grid []float64, width, noise float64, rng *rand.Rand) dynamo.Field {
	f := Gaussian(grid, width)
	AddNoise(f, noise, rng)
	return f
}

// Gradient is the forward difference on a ring: out[i] = in[i+1 mod n] - in[i].
func Gradient(in dynamo.Field) dynamo.Field {
	out := make(dynamo.Field, len(in))
	GradientInto(out, in)
	return out
}

// GradientInto writes the ring gradient of src into dst. dst and src must
// not alias.
func GradientInto(dst, src dynamo.Field) {
	n := len(src)
	for i := 0; i < n; i++ {
		dst[i] = src[(i+1)%n] - src[i]
	}
}

// Pressure is the negated ring gradient.
func Pressure(in dynamo.Field) dynamo.Field {
	out := make(dynamo.Field, len(in))
	PressureInto(out, in)
	return out
}

func PressureInto(dst, src dynamo.Field) {
	GradientInto(dst, src)
	for i := range dst {
		dst[i] = -dst[i]
	}
}

// Clamp raises every element below floor, or NaN, to floor and reports how
// many elements were raised.
func Clamp(f dynamo.Field, floor float64) int {
	raised := 0
	for i, v := range f {
		if !(v >= floor) {
			f[i] = floor
			raised++
		}
	}
	return raised
}

// Energy is Σ f[i]².
func Energy(f dynamo.Field) float64 {
	return f.SumSquares()
}
