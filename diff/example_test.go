package diff_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqdiff/diff"
)

// ExampleDiff reports the two runs around a deleted element.
func ExampleDiff() {
	a := []string{"x", "DELETE", "y"}
	b := []string{"x", "y"}

	err := diff.Diff(len(a), len(b),
		func(i, j int) bool { return a[i] == b[j] },
		func(n, ai, bi int) { fmt.Println(n, ai, bi) },
	)
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 1 0 0
	// 1 2 1
}

// ExampleDiff_commonSubsequence rebuilds the common subsequence of the
// two strings from Myers' paper. Any LCS has length 4.
func ExampleDiff_commonSubsequence() {
	a, b := "abcabba", "cbabac"

	var sb strings.Builder
	_ = diff.Diff(len(a), len(b),
		func(i, j int) bool { return a[i] == b[j] },
		func(n, ai, _ int) { sb.WriteString(a[ai : ai+n]) },
	)
	fmt.Println(len(sb.String()))
	// Output:
	// 4
}

// ExampleDiff_invalidLength shows the validation error naming its parameter.
func ExampleDiff_invalidLength() {
	err := diff.Diff(-1, 3,
		func(int, int) bool { return false },
		func(int, int, int) {},
	)
	fmt.Println(err)
	// Output:
	// diff: invalid length: aLength must be a non-negative safe integer (got -1)
}
