package analysis

import "math"

const (
	TrendDecreasing = "decreasing"
	TrendIncreasing = "increasing"
	TrendFlat       = "flat"
)

// flatTolerance is the relative change under which a trace counts as flat.
const flatTolerance = 1e-12

type Summary struct {
	Steps              int
	Initial            float64
	Final              float64
	Min                float64
	Max                float64
	RelativeChange     float64
	DecreasingFraction float64
}

// Summarize reduces an energy history. An empty history yields a zero Summary.
func Summarize(history []float64) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	s := Summary{
		Steps:   len(history),
		Initial: history[0],
		Final:   history[len(history)-1],
		Min:     history[0],
		Max:     history[0],
	}

	decreasing := 0
	for i, e := range history {
		s.Min = math.Min(s.Min, e)
		s.Max = math.Max(s.Max, e)
		if i > 0 && e < history[i-1] {
			decreasing++
		}
	}

	if len(history) > 1 {
		s.DecreasingFraction = float64(decreasing) / float64(len(history)-1)
	}
	if s.Initial != 0 {
		s.RelativeChange = (s.Final - s.Initial) / math.Abs(s.Initial)
	}
	return s
}

// Trend compares the last value of the history with the first.
func Trend(history []float64) string {
	s := Summarize(history)
	switch {
	case s.Steps < 2 || math.Abs(s.RelativeChange) <= flatTolerance:
		return TrendFlat
	case s.RelativeChange < 0:
		return TrendDecreasing
	default:
		return TrendIncreasing
	}
}
