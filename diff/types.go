package diff

import "errors"

// MaxLength is the largest sequence length Diff accepts. It mirrors the
// largest integer a float64 represents exactly, so lengths coming from
// JSON or other float-backed sources stay exact.
const MaxLength = 1<<53 - 1

// Sentinel errors returned by Diff. Both are wrapped with the name of the
// offending parameter; match them with errors.Is.
var (
	// ErrInvalidLength indicates aLength or bLength is negative or above MaxLength.
	ErrInvalidLength = errors.New("diff: invalid length")

	// ErrInvalidCallback indicates isCommon or foundSubsequence is nil.
	ErrInvalidCallback = errors.New("diff: invalid callback")
)

// IsCommonFunc reports whether element aIndex of the first sequence and
// element bIndex of the second are to be treated as equal.
// It is only ever called with 0 <= aIndex < aLength and 0 <= bIndex < bLength.
type IsCommonFunc func(aIndex, bIndex int) bool

// FoundSubsequenceFunc receives one run of nCommon (>= 1) common elements
// starting at aCommon in the first sequence and bCommon in the second.
type FoundSubsequenceFunc func(nCommon, aCommon, bCommon int)

// rect is a region of the edit graph: indexes [aStart, aEnd) of the first
// sequence against [bStart, bEnd) of the second, in caller coordinates.
type rect struct {
	aStart, aEnd int
	bStart, bEnd int
}

// empty reports whether the rectangle has no extent in either dimension.
func (r rect) empty() bool {
	return r.aStart >= r.aEnd || r.bStart >= r.bEnd
}

// run is a diagonal of n common elements in caller coordinates.
type run struct {
	n, a, b int
}
