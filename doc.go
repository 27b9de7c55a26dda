// Package seqdiff finds a longest common subsequence of two sequences and
// reports it as runs of consecutive matches, using Myers' O(ND) difference
// algorithm in linear space.
//
// 🚀 What is seqdiff?
//
//	A small, dependency-free engine plus thin adapters:
//		• diff.Diff: lengths + equality predicate in, ordered maximal runs out
//		• sequence: slices, strings, lines and words to runs, edit distance, similarity
//		• cmd/seqdiff: compare two files from the command line
//
// ✨ Why seqdiff?
//
//   - Works on anything indexable: the engine never sees your elements
//   - Linear memory: O(N + M) working storage, no recursion on the Go stack
//   - Deterministic: the same inputs always yield the same runs, and
//     swapping the inputs swaps the coordinates of every run
//   - Pure Go – no cgo, no hidden deps in library packages
//
// Packages:
//
//	diff/         — the engine: validation, trimming, middle snake, divider
//	sequence/     — typed front ends, interning, result metrics
//	internal/cli/ — cobra commands behind cmd/seqdiff
//
// Quick example:
//
//	a, b := "abcabba", "cbabac"
//	_ = diff.Diff(len(a), len(b),
//		func(i, j int) bool { return a[i] == b[j] },
//		func(n, ai, bi int) { fmt.Println(a[ai : ai+n]) },
//	)
//
// See diff/doc.go for the algorithm and its guarantees.
package seqdiff
