package diff_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seqdiff/diff"
	"github.com/stretchr/testify/require"
)

// call is one recorded foundSubsequence invocation.
type call struct {
	N, A, B int
}

// runDiff diffs a and b by byte equality and records every sink call.
// It fails the test if isCommon is ever called out of range.
func runDiff(t *testing.T, a, b string) []call {
	t.Helper()

	var calls []call
	err := diff.Diff(len(a), len(b),
		func(i, j int) bool {
			require.True(t, i >= 0 && i < len(a), "aIndex %d out of range", i)
			require.True(t, j >= 0 && j < len(b), "bIndex %d out of range", j)
			return a[i] == b[j]
		},
		func(n, ai, bi int) { calls = append(calls, call{N: n, A: ai, B: bi}) },
	)
	require.NoError(t, err)

	return calls
}

// requireWellFormed checks ordering, non-overlap, run length and validity.
func requireWellFormed(t *testing.T, a, b string, calls []call) {
	t.Helper()

	prevA, prevB := 0, 0
	for i, c := range calls {
		require.GreaterOrEqual(t, c.N, 1, "call %d: nCommon must be positive", i)
		require.GreaterOrEqual(t, c.A, prevA, "call %d: aCommon overlaps or goes back", i)
		require.GreaterOrEqual(t, c.B, prevB, "call %d: bCommon overlaps or goes back", i)
		for j := 0; j < c.N; j++ {
			require.Equal(t, a[c.A+j], b[c.B+j], "call %d: element %d is not common", i, j)
		}
		prevA, prevB = c.A+c.N, c.B+c.N
	}
	require.LessOrEqual(t, prevA, len(a))
	require.LessOrEqual(t, prevB, len(b))
}

// commonLength sums nCommon over calls.
func commonLength(calls []call) int {
	total := 0
	for _, c := range calls {
		total += c.N
	}

	return total
}

// editDistance is the greedy forward O(ND) search, used as an independent
// baseline for the shortest edit distance between a and b.
func editDistance(a, b string) int {
	n, m := len(a), len(b)
	limit := n + m
	off := limit + 1
	v := make([]int, 2*limit+3)
	for d := 0; d <= limit; d++ {
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1]
			} else {
				x = v[off+k-1] + 1
			}
			y := x - k
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}
			v[off+k] = x
			if x >= n && y >= m {
				return d
			}
		}
	}

	return limit
}

// requireOracleRuns diffs n against m elements under isCommon, checks every
// run is ordered, maximal and accepted by isCommon, and returns the total
// common length.
func requireOracleRuns(t *testing.T, n, m int, isCommon func(i, j int) bool) int {
	t.Helper()

	var calls []call
	err := diff.Diff(n, m, isCommon, func(c, ai, bi int) { calls = append(calls, call{N: c, A: ai, B: bi}) })
	require.NoError(t, err)

	prevA, prevB := 0, 0
	for i, c := range calls {
		require.GreaterOrEqual(t, c.N, 1, "call %d", i)
		require.GreaterOrEqual(t, c.A, prevA, "call %d: aCommon overlaps or goes back", i)
		require.GreaterOrEqual(t, c.B, prevB, "call %d: bCommon overlaps or goes back", i)
		if i > 0 {
			require.False(t, c.A == prevA && c.B == prevB, "call %d continues the previous run", i)
		}
		for k := 0; k < c.N; k++ {
			require.True(t, isCommon(c.A+k, c.B+k), "call %d: pair %d rejected by isCommon", i, k)
		}
		prevA, prevB = c.A+c.N, c.B+c.N
	}
	require.LessOrEqual(t, prevA, n)
	require.LessOrEqual(t, prevB, m)

	return commonLength(calls)
}

// lcsFunc is the quadratic dynamic-programming LCS length of n against m
// elements under an arbitrary predicate.
func lcsFunc(n, m int, isCommon func(i, j int) bool) int {
	next := make([]int, m+1)
	cur := make([]int, m+1)
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			switch {
			case isCommon(i, j):
				cur[j] = next[j+1] + 1
			case next[j] >= cur[j+1]:
				cur[j] = next[j]
			default:
				cur[j] = cur[j+1]
			}
		}
		next, cur = cur, next
	}

	return next[0]
}

// randString returns a string of length n drawn from alphabet.
func randString(rng *rand.Rand, alphabet string, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(buf)
}
