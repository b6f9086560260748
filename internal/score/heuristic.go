package score

import (
	"math/rand"
	"time"
)

// Heuristic bounds: the unscaled draw lives in [20,80], deliberately never
// touching the extremes so the heuristic alone can neither clear nor
// condemn a text.
const (
	heuristicFloor = 20.0
	heuristicSpan  = 60.0
)

// Heuristic produces the intuition-themed score layer: a uniform draw from
// [20,80] scaled by densityBias. With a seed the draw is reproducible;
// without one it varies per call. The caller validates densityBias. The
// value is returned unrounded; the hybrid combiner rounds at assembly.
func Heuristic(densityBias float64, seed *int64) float64 {
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	raw := heuristicFloor + rng.Float64()*heuristicSpan
	return raw * densityBias
}
