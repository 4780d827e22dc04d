package series

import "math/rand"

// RandomSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewSeededSource returns a deterministic source for the given seed.
// The returned source is not safe for concurrent use; create one per call.
func NewSeededSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// uniform maps a [0,1) draw onto [-bound, +bound).
func uniform(rnd RandomSource, bound float64) float64 {
	return (rnd.Float64() - 0.5) * 2 * bound
}
