// Package dynamo provides the core types shared by the pressure simulation.
//
// The package defines the vocabulary the other packages speak:
//
//   - [Field]: a density (or pressure) profile over the grid
//   - [Config]: the driver configuration (grid size, steps, step size)
//   - [Result]: the energy history and final field of a run
//
// # Example
//
//	cfg := dynamo.DefaultConfig()
//	s, _ := sim.New(cfg)
//	result := s.Run()
//
// # Thread Safety
//
// Fields are plain slices. A Simulator owns its density field exclusively
// and is NOT safe for concurrent use.
package dynamo
