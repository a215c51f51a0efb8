package plane

import "math/rand/v2"

// NewRand returns a deterministic PCG generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Randomize overwrites every row with an independent uniform draw over all
// 2^N patterns of its width, the all-ones pattern included. Rows are
// rewritten in place, so views over them see the new bits. An empty plane
// is left untouched.
func (p *Plane) Randomize(r *rand.Rand) {
	if len(p.shape) == 0 {
		return
	}
	p.eachRow(func(_ int, row *Row) { randomizeRow(r, row) })
}

// randomizeRow draws a value in [0, 2^N-1] and writes it left-padded with
// the most significant bit first. Rows wider than a word take one draw per
// 64 bits.
func randomizeRow(r *rand.Rand, row *Row) {
	if row.width <= 64 {
		v := r.Uint64()
		if row.width < 64 {
			v &= 1<<uint(row.width) - 1
		}
		// v is masked to the row width, so it always fits.
		_ = row.SetUint64(v)
		return
	}

	var word uint64
	for i := 0; i < row.width; i++ {
		if i%64 == 0 {
			word = r.Uint64()
		}
		row.bits.SetTo(uint(i), word&1 == 1)
		word >>= 1
	}
}
