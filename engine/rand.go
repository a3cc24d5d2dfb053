package engine

// Rand is the uniform random integer source the engine consumes. The engine
// never touches global randomness: board seeding, initial positions and
// fallback moves all draw from an injected Rand, so a fixed source yields a
// bit-exact game and concurrent simulations stay fully isolated.
//
// *math/rand.Rand satisfies Rand.
type Rand interface {
	// Intn returns a uniform int in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// XorShift is a xorshift64 generator implementing Rand. One uint64 seed
// fully determines the sequence.
type XorShift struct {
	state uint64
}

// NewXorShift returns a generator seeded with seed. A zero seed is corrected
// to 1, since xorshift cannot leave state 0.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1
	}
	return &XorShift{state: seed}
}

func (x *XorShift) next() uint64 {
	v := x.state
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	x.state = v
	return v
}

// Intn returns a uniform int in [0, n). It panics if n <= 0.
func (x *XorShift) Intn(n int) int {
	if n <= 0 {
		panic("engine: Intn called with non-positive bound")
	}
	return int(x.next() % uint64(n))
}
