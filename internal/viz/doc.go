// Package viz provides a live terminal view of a running simulation.
//
// [Watch] is a Bubble Tea model that steps a [sim.Simulator] on a ticker
// and redraws the density profile and energy trace on every frame:
//
//	s, _ := sim.New(cfg)
//	p := tea.NewProgram(viz.NewWatch(s, 30))
//	_, err := p.Run()
//
// Keys: space pauses, r resets, q quits.
package viz
