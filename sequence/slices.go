package sequence

// Common returns the runs of a longest common subsequence of a and b.
func Common[E comparable](a, b []E) []Run {
	return mustCollect(len(a), len(b), func(i, j int) bool { return a[i] == b[j] })
}

// CommonFunc is Common with a caller-supplied equality, which may compare
// values of different types.
func CommonFunc[A, B any](a []A, b []B, eq func(A, B) bool) []Run {
	return mustCollect(len(a), len(b), func(i, j int) bool { return eq(a[i], b[j]) })
}

// Runes compares two strings rune by rune. Run positions count runes.
func Runes(a, b string) []Run {
	return Common([]rune(a), []rune(b))
}

// Bytes compares two byte slices. Run positions count bytes.
func Bytes(a, b []byte) []Run {
	return Common(a, b)
}

// mustCollect calls Collect with arguments that cannot fail validation:
// lengths come from slices and the predicate is non-nil.
func mustCollect(aLength, bLength int, isCommon func(i, j int) bool) []Run {
	runs, err := Collect(aLength, bLength, isCommon)
	if err != nil {
		panic("sequence: " + err.Error())
	}

	return runs
}
