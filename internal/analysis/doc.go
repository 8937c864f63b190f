// Package analysis summarises energy traces produced by the simulator.
//
//   - [Summarize]: initial, final and extreme values plus relative change
//   - [Trend]: coarse direction of the trace
package analysis
