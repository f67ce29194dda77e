package bloom

/*

# Standalone Bloom filter

This package provides an in-memory Bloom filter: a space efficient
probabilistic set that callers embed to cheapen existence checks before
paying for an expensive lookup.

## What the filter answers

A membership query has two outcomes:

- "definitely not present": authoritative, the element was never inserted.
- "maybe present": the element was inserted, or every one of its bit
  positions happens to be set by other insertions (a false positive).

The filter carries no proof of either answer. It exists to skip lookups that
would certainly miss, nothing more.

## Sizing

Two constructors derive the filter dimensions:

- New takes a target false positive rate. The bucket count comes from
  MinBuckets and the hash count from OptimalHashCountCeil.
- NewWithBuckets takes an explicit bucket count. Only the hash count is
  derived, via OptimalHashCountTrunc.

The two constructors round the optimal hash count in opposite directions.
This divergence is preserved from the sizing behavior the package was built
to match rather than unified, because unifying it would change the observed
false positive rate of one constructor or the other. Filters built by New and
NewWithBuckets for equivalent inputs can therefore carry different hash
counts. Callers that need one policy for both construction styles should call
the sizing functions directly and build with NewWithBuckets.

EstimateFalsePositiveRate, surfaced per filter as FalsePositiveRate, reports
the expected false positive probability at the current insertion count.

## Hashing

A filter owns a fixed, ordered set of independently seeded hash functions.
Each Insert or MayContain digests the element once per function and reduces
the digest modulo the bucket count. The hash family is a construction
parameter (HasherFactory); murmur3 is the default, with xxh3 and xxhash
families provided. Seeds come from an injectable SeedSource so tests can make
filters reproducible.

Hash functions only need uniform distribution over the bit array, not
collision resistance.

## Limits

- No deletion. Bits only ever flip to set, so an inserted element is never
  reported absent later.
- No resizing. Dimensions are fixed at construction.
- No serialization.
- Not safe for concurrent use. A caller sharing a filter across goroutines
  must serialize access, for example with one RWMutex per filter.

*/
