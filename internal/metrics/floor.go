package metrics

import "github.com/san-kum/pressim/internal/dynamo"

// FloorHits counts elements sitting at or below the clamp floor, summed
// over every observed step.
type FloorHits struct {
	name  string
	floor float64
	hits  int
}

func NewFloorHits(floor float64) *FloorHits {
	return &FloorHits{
		name:  "floor_hits",
		floor: floor,
	}
}

func (h *FloorHits) Name() string {
	return h.name
}

func (h *FloorHits) Observe(f dynamo.Field, step int) {
	for _, v := range f {
		if v <= h.floor {
			h.hits++
		}
	}
}

func (h *FloorHits) Value() float64 {
	return float64(h.hits)
}

func (h *FloorHits) Reset() {
	h.hits = 0
}
