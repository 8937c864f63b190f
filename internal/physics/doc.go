// Package physics implements the informational-pressure model on a
// one-dimensional ring.
//
// The density field I is pushed by the pressure P = -dI/dx, where the
// derivative is a forward difference with periodic wraparound:
//
//   - [Gradient]: out[i] = I[i+1 mod n] - I[i]
//   - [Pressure]: -[Gradient]
//   - [Clamp]: keeps the field above a positive floor
//   - [Energy]: Σ I², the convergence diagnostic
//
// # Initial Profile
//
// [InitialDensity] samples exp(-k·x²) on a [Linspace] grid and adds
// uniform noise drawn from a caller-owned generator:
//
//	grid := physics.Linspace(-4, 4, 400)
//	rng := rand.New(rand.NewSource(42))
//	I := physics.InitialDensity(grid, 3, 0.2, rng)
package physics
