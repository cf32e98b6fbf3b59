package instance

import "math"

const (
	// lcgMultiplier is from L'Ecuyer, "Tables of linear congruential
	// generators of different sizes and good lattice structure", Table 4.
	lcgMultiplier int64 = 3935559000370003845
	// lcgIncrement can be any odd number.
	lcgIncrement int64 = 0xFACED
)

// LCG is a linear congruential generator modulo 2^64. It is deterministic:
// the same seed always yields the same sequence on every platform.
type LCG struct {
	state int64
}

func NewLCG(seed int64) *LCG {
	return &LCG{state: seed}
}

// Step advances the generator and returns the new state.
func (g *LCG) Step() int64 {
	g.state = lcgMultiplier*g.state + lcgIncrement
	return g.state
}

// NextDouble returns a number in [0, 1].
func (g *LCG) NextDouble() float64 {
	return float64(g.Step()&math.MaxInt64) / math.MaxInt64
}
