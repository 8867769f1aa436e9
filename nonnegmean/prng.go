package nonnegmean

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// sha256Source is a counter-based pseudorandom source: each call hashes a
// fixed seed together with a monotonically increasing counter and returns
// the first eight bytes of the digest. Unlike math/rand's default source,
// it produces the same stream on every platform and Go version, which
// matters for a simulation whose reported quantile should be reproducible.
//
// It implements rand.Source64, so it can be wrapped with rand.New to get
// the full rand.Rand API (Float64, Shuffle, Perm, ...).
type sha256Source struct {
	seed    int64
	counter uint64
}

// newSHA256Source returns a deterministic rand.Source seeded with seed.
func newSHA256Source(seed int64) *sha256Source {
	return &sha256Source{seed: seed}
}

func (s *sha256Source) Seed(seed int64) {
	s.seed = seed
	s.counter = 0
}

func (s *sha256Source) Uint64() uint64 {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], uint64(s.seed))
	binary.BigEndian.PutUint64(buf[8:16], s.counter)
	s.counter++
	digest := sha256.Sum256(buf[:])
	return binary.BigEndian.Uint64(digest[:8])
}

func (s *sha256Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// NewRand returns a *rand.Rand backed by a deterministic, counter-based
// source seeded with seed, suitable for reproducible simulations such as
// KaplanMartingaleSampleSizeSim.
func NewRand(seed int64) *rand.Rand {
	return rand.New(newSHA256Source(seed))
}
