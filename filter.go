package bloom

import "github.com/bits-and-blooms/bitset"

// Filter is a space efficient probabilistic set. Insert records an element;
// MayContain answers "maybe present" or "definitely not present". False
// positives occur at a rate driven by the sizing, false negatives never
// occur.
//
// A Filter is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access externally.
type Filter struct {
	bits    *bitset.BitSet
	hashers []Hasher64
	n       uint64
}

type config struct {
	factory HasherFactory
	seeds   SeedSource
}

// Option adjusts filter construction.
type Option func(*config)

// WithHasherFactory substitutes the hash function family used by the filter.
// The default is Murmur3Hasher.
func WithHasherFactory(f HasherFactory) Option {
	return func(c *config) { c.factory = f }
}

// WithSeedSource substitutes the source of per-hash-function seeds. The
// default draws from process randomness; a fixed source makes the filter's
// bit positions reproducible.
func WithSeedSource(s SeedSource) Option {
	return func(c *config) { c.seeds = s }
}

// New builds a filter sized for expectedElements insertions at a target false
// positive rate. The bucket count comes from MinBuckets and the hash count
// from OptimalHashCountCeil.
func New(expectedElements uint64, fpRate float64, opts ...Option) (*Filter, error) {
	buckets, err := MinBuckets(expectedElements, fpRate)
	if err != nil {
		return nil, err
	}
	return newFilter(buckets, OptimalHashCountCeil(buckets, expectedElements), opts)
}

// NewWithBuckets builds a filter with a caller-chosen bucket count for
// expectedElements insertions. The hash count comes from
// OptimalHashCountTrunc.
func NewWithBuckets(expectedElements, buckets uint64, opts ...Option) (*Filter, error) {
	if expectedElements == 0 {
		return nil, ErrZeroExpectedElements
	}
	if buckets == 0 {
		return nil, ErrZeroBuckets
	}
	return newFilter(buckets, OptimalHashCountTrunc(buckets, expectedElements), opts)
}

// NewDefault builds a filter with DefaultBuckets and DefaultHashCount, for
// callers with no sizing requirement.
func NewDefault(opts ...Option) (*Filter, error) {
	return newFilter(DefaultBuckets, DefaultHashCount, opts)
}

func newFilter(buckets, hashCount uint64, opts []Option) (*Filter, error) {
	if buckets == 0 {
		return nil, ErrZeroBuckets
	}
	if hashCount == 0 {
		return nil, ErrZeroHashers
	}

	cfg := config{factory: Murmur3Hasher, seeds: defaultSeedSource}
	for _, opt := range opts {
		opt(&cfg)
	}

	hashers := make([]Hasher64, hashCount)
	for i := range hashers {
		hashers[i] = cfg.factory(cfg.seeds())
	}
	return &Filter{
		bits:    bitset.New(uint(buckets)),
		hashers: hashers,
	}, nil
}

// Insert adds elem to the set. Every insertion increments Size, duplicates
// included.
func (f *Filter) Insert(elem []byte) {
	for _, h := range f.hashers {
		f.bits.Set(f.index(h, elem))
	}
	f.n++
}

// InsertString adds the bytes of s to the set.
func (f *Filter) InsertString(s string) { f.Insert([]byte(s)) }

// MayContain reports whether elem may be in the set. A false result is
// definitive, a true result may be a false positive.
func (f *Filter) MayContain(elem []byte) bool {
	for _, h := range f.hashers {
		if !f.bits.Test(f.index(h, elem)) {
			return false
		}
	}
	return true
}

// MayContainString reports whether the bytes of s may be in the set.
func (f *Filter) MayContainString(s string) bool { return f.MayContain([]byte(s)) }

// Size returns the number of insertions, counting duplicates.
func (f *Filter) Size() uint64 { return f.n }

// Buckets returns the bit array length.
func (f *Filter) Buckets() uint64 { return uint64(f.bits.Len()) }

// HashCount returns the number of hash functions.
func (f *Filter) HashCount() int { return len(f.hashers) }

// FalsePositiveRate returns the expected false positive probability at the
// filter's current load.
func (f *Filter) FalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.Buckets(), uint64(f.HashCount()), f.Size())
}

// index maps elem to a bucket under h. Hasher order is fixed at construction
// so repeated calls derive identical positions.
func (f *Filter) index(h Hasher64, elem []byte) uint {
	return uint(h.Sum64(elem) % f.Buckets())
}
