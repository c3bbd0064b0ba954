package core

// Rand is the randomness source consumed by the simulation
// Production uses FastRand, tests substitute scripted implementations
type Rand interface {
	// Between returns a uniform integer in [min, max], inverted ranges are swapped
	Between(min, max int) int
	// Intn returns a uniform integer in [0, n), 0 when n <= 0
	Intn(n int) int
}

// Pick returns a uniformly chosen element of items
// Panics on an empty slice, callers guarantee at least one element
func Pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// Chance rolls a percentage, true when Between(1, 100) <= percent
func Chance(r Rand, percent int) bool {
	return r.Between(1, 100) <= percent
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, the seed is mixed so small seeds start well spread
func NewFastRand(seed uint64) *FastRand {
	z := seed + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31
	if z == 0 {
		z = 1
	}
	return &FastRand{state: z}
}

// Next advances the generator
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

func (r *FastRand) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.Intn(max-min+1)
}
