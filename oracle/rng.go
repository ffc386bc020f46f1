package oracle

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand"
)

// rngFromSeed returns a deterministic *mrand.Rand for the given seed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// nondeterministicSeed draws a fresh int64 seed from the operating system's
// CSPRNG. Used as New's default when no WithSeed option is supplied, so
// that distinct runs never share RNG state.
func nondeterministicSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unrecoverable on any real
		// platform; fall back to a big.Int draw rather than a fixed
		// constant, to still avoid a reused deterministic stream.
		n, _ := rand.Int(rand.Reader, big.NewInt(1<<62))
		if n != nil {
			return n.Int64()
		}
		return 1
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
