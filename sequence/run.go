package sequence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/seqdiff/diff"
)

// Sentinel errors for run validation.
var (
	// ErrOutOfRange indicates a run that is empty or leaves its sequence.
	ErrOutOfRange = errors.New("sequence: run out of range")

	// ErrUnordered indicates a run that starts before the previous one ended.
	ErrUnordered = errors.New("sequence: runs overlap or are out of order")
)

// Run is N common elements starting at A in the first sequence and at B
// in the second.
type Run struct {
	N int `json:"n"`
	A int `json:"a"`
	B int `json:"b"`
}

// String renders the run as "n@a,b".
func (r Run) String() string {
	return fmt.Sprintf("%d@%d,%d", r.N, r.A, r.B)
}

// Collect runs the engine and returns its runs in reporting order.
// Errors from diff.Diff are returned unchanged.
func Collect(aLength, bLength int, isCommon diff.IsCommonFunc) ([]Run, error) {
	var runs []Run
	err := diff.Diff(aLength, bLength, isCommon, func(n, a, b int) {
		runs = append(runs, Run{N: n, A: a, B: b})
	})
	if err != nil {
		return nil, err
	}

	return runs, nil
}

// Length returns the total number of common elements in runs.
func Length(runs []Run) int {
	total := 0
	for _, r := range runs {
		total += r.N
	}

	return total
}

// EditDistance returns the number of deletions plus insertions needed to
// turn the first sequence into the second given runs of an LCS.
func EditDistance(aLength, bLength int, runs []Run) int {
	return aLength + bLength - 2*Length(runs)
}

// Similarity returns 2·L/(aLength+bLength), where L is the common length:
// 1 for equal sequences, 0 for sequences with nothing in common. Two empty
// sequences are equal.
func Similarity(aLength, bLength int, runs []Run) float64 {
	if aLength+bLength == 0 {
		return 1
	}

	return 2 * float64(Length(runs)) / float64(aLength+bLength)
}

// Pairs expands runs into matched index pairs {aIndex, bIndex}.
func Pairs(runs []Run) [][2]int {
	out := make([][2]int, 0, Length(runs))
	for _, r := range runs {
		for i := 0; i < r.N; i++ {
			out = append(out, [2]int{r.A + i, r.B + i})
		}
	}

	return out
}

// Validate checks that runs are non-empty, inside both sequences, and
// strictly left to right without overlap.
//
// Errors:
//   - ErrOutOfRange — a run is empty or extends past a sequence.
//   - ErrUnordered  — a run starts before the previous run ended.
func Validate(aLength, bLength int, runs []Run) error {
	nextA, nextB := 0, 0
	for i, r := range runs {
		if r.N < 1 || r.A < 0 || r.B < 0 || r.A+r.N > aLength || r.B+r.N > bLength {
			return fmt.Errorf("%w: run %d is %v for lengths %d, %d", ErrOutOfRange, i, r, aLength, bLength)
		}
		if r.A < nextA || r.B < nextB {
			return fmt.Errorf("%w: run %d is %v", ErrUnordered, i, r)
		}
		nextA, nextB = r.A+r.N, r.B+r.N
	}

	return nil
}
