package diff

// Diff reports the runs of one longest common subsequence of two sequences
// of aLength and bLength elements.
//
// isCommon compares element aIndex of the first sequence with element
// bIndex of the second. foundSubsequence is called once per maximal run,
// with both aCommon and bCommon strictly increasing across calls and
// nCommon >= 1; runs never overlap.
//
// Errors:
//   - ErrInvalidLength   — aLength or bLength is negative or above MaxLength.
//   - ErrInvalidCallback — isCommon or foundSubsequence is nil.
//
// Both are returned before any callback runs. After validation Diff cannot
// fail; a panic raised by a callback propagates unchanged.
//
// Example:
//
//	err := diff.Diff(len(a), len(b),
//		func(i, j int) bool { return a[i] == b[j] },
//		func(n, ai, bi int) { common = append(common, a[ai:ai+n]...) },
//	)
func Diff(aLength, bLength int, isCommon IsCommonFunc, foundSubsequence FoundSubsequenceFunc) error {
	if err := validateArgs(aLength, bLength, isCommon, foundSubsequence); err != nil {
		return err
	}

	// nothing can be common with an empty sequence
	if aLength == 0 || bLength == 0 {
		return nil
	}

	newDivider(isCommon, foundSubsequence).run(rect{aEnd: aLength, bEnd: bLength})

	return nil
}
