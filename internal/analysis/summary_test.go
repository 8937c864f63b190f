package analysis

import (
	"math"
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{10, 8, 9, 5})

	if s.Steps != 4 {
		t.Errorf("expected 4 steps, got %d", s.Steps)
	}
	if s.Initial != 10 || s.Final != 5 {
		t.Errorf("unexpected endpoints: %+v", s)
	}
	if s.Min != 5 || s.Max != 10 {
		t.Errorf("unexpected extremes: %+v", s)
	}
	if math.Abs(s.RelativeChange+0.5) > 1e-12 {
		t.Errorf("expected relative change -0.5, got %v", s.RelativeChange)
	}
	if math.Abs(s.DecreasingFraction-2.0/3.0) > 1e-12 {
		t.Errorf("expected decreasing fraction 2/3, got %v", s.DecreasingFraction)
	}
}

func TestTrend(t *testing.T) {
	tests := []struct {
		name    string
		history []float64
		want    string
	}{
		{"empty", nil, TrendFlat},
		{"single", []float64{3}, TrendFlat},
		{"constant", []float64{4, 4, 4}, TrendFlat},
		{"down", []float64{4, 3, 2}, TrendDecreasing},
		{"up", []float64{1, 3, 2}, TrendIncreasing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Trend(tt.history); got != tt.want {
				t.Errorf("Trend(%v) = %q, want %q", tt.history, got, tt.want)
			}
		})
	}
}
