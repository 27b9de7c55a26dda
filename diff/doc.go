// Package diff finds the longest common subsequence of two index-addressed
// sequences using a linear-space variant of Myers' O(ND) difference algorithm.
//
// What:
//
//   - The caller describes two sequences only by their lengths and an
//     IsCommonFunc predicate that compares element aIndex of the first with
//     element bIndex of the second. The engine never sees the elements.
//   - Every maximal run of common elements on one optimal alignment is
//     delivered to a FoundSubsequenceFunc sink, strictly left to right.
//   - Nothing is returned except a validation error; there is no edit script.
//
// How:
//
//  1. Validate lengths and callbacks (ErrInvalidLength, ErrInvalidCallback).
//  2. Trim the common prefix and suffix of the current rectangle of the
//     edit graph by walking the main diagonal from both corners.
//  3. Search forward from the top-left corner and backward from the
//     bottom-right corner, one edit distance d at a time, until the two
//     frontiers overlap on some diagonal. The snake where they meet lies on
//     a shortest edit path (the "middle snake").
//  4. Split the rectangle at the middle snake and repeat on the part before
//     it, then on the part after it. Pending rectangles live on an explicit
//     stack, so input size never translates into Go call depth.
//
// Orientation:
//
//	The search always runs in a frame where the first dimension is the longer
//	one. A rectangle keeps the frame of the rectangle it was split from and
//	transposes only when its own extents disagree with that frame, so swapping
//	a and b (for sequences of different lengths) yields the same matched pairs.
//
// Ambiguity:
//
//	When several longest common subsequences exist the one produced is fixed:
//	the forward search takes the vertical move (from diagonal k+1) unless the
//	horizontal move (from diagonal k-1) reaches strictly further, the backward
//	search mirrors that rule, and the first overlapping diagonal in sweep order
//	becomes the middle snake.
//
// Complexity (N = aLength+bLength, D = edit distance):
//
//   - Time:   O(N·D)
//   - Memory: O(D) for frontiers plus O(log N) to O(min(aLength, bLength))
//     pending rectangles on the work stack.
//
// Concurrency:
//
//	Diff keeps all state local to the call. Concurrent calls are safe as long
//	as the callbacks themselves are. Callbacks must not re-enter Diff for the
//	same computation; a panic inside a callback propagates to the caller.
//
// Usage:
//
//	a := []string{"x", "DELETE", "y"}
//	b := []string{"x", "y"}
//	err := diff.Diff(len(a), len(b),
//		func(i, j int) bool { return a[i] == b[j] },
//		func(n, ai, bi int) { fmt.Println(n, ai, bi) },
//	)
//	// 1 0 0
//	// 1 2 1
package diff
