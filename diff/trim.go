package diff

// trim walks the main diagonal of r from both corners and returns the
// length of the common prefix and of the common suffix. The suffix scan
// stops where it would reach the prefix, so the two never share an index.
//
// Complexity: O(prefix + suffix) predicate calls.
func trim(r rect, isCommon IsCommonFunc) (prefix, suffix int) {
	for r.aStart+prefix < r.aEnd && r.bStart+prefix < r.bEnd &&
		isCommon(r.aStart+prefix, r.bStart+prefix) {
		prefix++
	}

	aLow, bLow := r.aStart+prefix, r.bStart+prefix
	for r.aEnd-suffix > aLow && r.bEnd-suffix > bLow &&
		isCommon(r.aEnd-suffix-1, r.bEnd-suffix-1) {
		suffix++
	}

	return prefix, suffix
}
