package bloom

import "math"

// maxBuckets bounds the float64 -> uint64 conversion in MinBuckets.
const maxBuckets = uint64(1) << 62

// MinBuckets returns the minimum bit array length that keeps the expected
// false positive rate at or below fpRate after expectedElements insertions:
//
//	m = ceil(-n * ln(p) / (ln 2)^2)
//
// The result is rounded up so the target rate is not exceeded in expectation.
func MinBuckets(expectedElements uint64, fpRate float64) (uint64, error) {
	if expectedElements == 0 {
		return 0, ErrZeroExpectedElements
	}
	// Written in the accepting direction so NaN is rejected too.
	if !(fpRate > 0 && fpRate < 1) {
		return 0, ErrBadFPRate
	}

	n := float64(expectedElements)
	m := math.Ceil(-n * math.Log(fpRate) / (math.Ln2 * math.Ln2))
	if m > float64(maxBuckets) {
		return 0, ErrBucketsOverflow
	}
	return uint64(m), nil
}

// OptimalHashCountCeil returns the hash function count minimising the false
// positive rate for buckets bits under expectedElements insertions:
//
//	k = ceil((m/n) * ln 2)
//
// New pairs this policy with MinBuckets. expectedElements must be > 0.
func OptimalHashCountCeil(buckets, expectedElements uint64) uint64 {
	return uint64(math.Ceil(loadFactorK(buckets, expectedElements)))
}

// OptimalHashCountTrunc truncates (m/n)*ln2 instead of rounding up, flooring
// the result at 1. NewWithBuckets pairs this policy with caller-chosen bucket
// counts. expectedElements must be > 0.
//
// The two policies produce different filters for identical inputs; see the
// package documentation for the divergence.
func OptimalHashCountTrunc(buckets, expectedElements uint64) uint64 {
	k := uint64(loadFactorK(buckets, expectedElements))
	if k == 0 {
		return 1
	}
	return k
}

func loadFactorK(buckets, expectedElements uint64) float64 {
	return float64(buckets) / float64(expectedElements) * math.Ln2
}

// EstimateFalsePositiveRate returns the expected false positive probability
// for a filter of buckets bits and hashCount hash functions after inserted
// insertions:
//
//	(1 - e^(-k*n/m))^k
//
// An empty filter reports exactly 0. The estimate grows monotonically with
// inserted.
func EstimateFalsePositiveRate(buckets, hashCount, inserted uint64) float64 {
	if inserted == 0 {
		return 0
	}

	k := float64(hashCount)
	n := float64(inserted)
	m := float64(buckets)
	return math.Pow(1-math.Exp(-k*n/m), k)
}
