package bloom

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher64 is one independently seeded hash function instance. Sum64 must be
// deterministic for a given instance: the seed is fixed at construction and a
// call never mutates it.
type Hasher64 interface {
	Sum64(data []byte) uint64
}

// HasherFactory builds a Hasher64 under the given seed. A filter invokes its
// factory once per hash function at construction.
type HasherFactory func(seed uint64) Hasher64

// SeedSource supplies one seed per hash function instance. The default source
// draws from process randomness; tests supply a fixed source instead.
type SeedSource func() uint64

func defaultSeedSource() uint64 { return rand.Uint64() }

// Murmur3Hasher is the default HasherFactory: a 64-bit murmur3 digest under a
// fixed seed. murmur3 seeds are 32 bits wide, so only the low half of seed is
// used.
func Murmur3Hasher(seed uint64) Hasher64 { return murmurHasher{seed: uint32(seed)} }

type murmurHasher struct{ seed uint32 }

func (m murmurHasher) Sum64(data []byte) uint64 {
	h := murmur3.New64WithSeed(m.seed)
	_, _ = h.Write(data)
	return h.Sum64()
}

// XXH3Hasher digests with xxh3 under a fixed seed, without per-call
// allocation.
func XXH3Hasher(seed uint64) Hasher64 { return xxh3Hasher{seed: seed} }

type xxh3Hasher struct{ seed uint64 }

func (x xxh3Hasher) Sum64(data []byte) uint64 { return xxh3.HashSeed(data, x.seed) }

// XXHasher digests with xxhash. xxhash takes no seed parameter, so the seed
// is folded in by prefixing its big-endian bytes to the digest stream.
func XXHasher(seed uint64) Hasher64 {
	var h xxHasher
	binary.BigEndian.PutUint64(h.prefix[:], seed)
	return h
}

type xxHasher struct{ prefix [8]byte }

func (x xxHasher) Sum64(data []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write(x.prefix[:])
	_, _ = d.Write(data)
	return d.Sum64()
}
