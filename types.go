package bloom

import "errors"

const (
	// DefaultBuckets and DefaultHashCount size filters built by NewDefault.
	// 1024 buckets at k=3 keeps the default filter useful to a few hundred
	// elements.
	DefaultBuckets   = 1024
	DefaultHashCount = 3
)

var (
	ErrZeroExpectedElements = errors.New("bloom: expected element count must be > 0")
	ErrBadFPRate            = errors.New("bloom: false positive rate must be in (0, 1)")
	ErrZeroBuckets          = errors.New("bloom: bucket count must be > 0")
	ErrZeroHashers          = errors.New("bloom: hash function count must be > 0")

	ErrBucketsOverflow = errors.New("bloom: bucket count overflows supported range")
)
