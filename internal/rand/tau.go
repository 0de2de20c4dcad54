package rand

// Tausworthe is a combined three-component Tausworthe generator. It is much
// cheaper to seed than MT19937 and has no cross-language compatibility
// guarantee; use it where only determinism matters.
type Tausworthe struct {
	state [3]int64
}

// NewTausworthe creates a generator from a seed.
func NewTausworthe(seed int64) *Tausworthe {
	t := &Tausworthe{}
	t.state[0] = seed
	if t.state[0] == 0 {
		t.state[0] = 1
	}
	// Spread the seed across the three components with an LCG, then warm up
	// past the correlated early outputs.
	t.state[1] = t.state[0]*6364136223846793005 + 1442695040888963407
	t.state[2] = t.state[1]*6364136223846793005 + 1442695040888963407
	for i := 0; i < 10; i++ {
		t.Int31()
	}
	return t
}

// Int31 generates a pseudo-random int32.
func (t *Tausworthe) Int31() int32 {
	t.state[0] = (((t.state[0] & 4294967294) << 12) & 0xFFFFFFFF) ^
		((((t.state[0] << 13) & 0xFFFFFFFF) ^ t.state[0]) >> 19)
	t.state[1] = (((t.state[1] & 4294967288) << 4) & 0xFFFFFFFF) ^
		((((t.state[1] << 2) & 0xFFFFFFFF) ^ t.state[1]) >> 25)
	t.state[2] = (((t.state[2] & 4294967280) << 17) & 0xFFFFFFFF) ^
		((((t.state[2] << 3) & 0xFFFFFFFF) ^ t.state[2]) >> 11)
	return int32(t.state[0] ^ t.state[1] ^ t.state[2])
}

// Float64 generates a pseudo-random float64 in [0, 1). The result is
// strictly below 1, which table builders rely on.
func (t *Tausworthe) Float64() float64 {
	return float64(uint32(t.Int31())>>1) / float64(1<<31)
}
