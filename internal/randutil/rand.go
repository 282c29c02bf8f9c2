// Package randutil centralises RNG construction so every call site
// derives reproducible sequences the same way.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	rand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided
// int64. rand/v2's PCG wants two 64-bit seeds; both are derived from
// the input with a bit mixer so adjacent seeds diverge immediately.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewCrypto returns a *rand.Rand seeded from the operating system's
// entropy source. Used for production shuffles where the permutation
// must not be predictable.
func NewCrypto() *rand.Rand {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("randutil: crypto entropy unavailable: " + err.Error())
	}
	return New(int64(binary.LittleEndian.Uint64(buf[:])))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
