package diff

// frontier stores, per diagonal k, the furthest x a search has reached.
// Diagonals may be negative, so slot k lives at x[k+bias]. The buffer only
// covers diagonals the search has actually visited and is grown on demand.
type frontier struct {
	x    []int
	bias int
}

// reset forgets every stored diagonal but keeps the allocation.
func (f *frontier) reset() {
	f.x = f.x[:0]
	f.bias = 0
}

// at returns the value stored for diagonal k.
func (f *frontier) at(k int) int {
	return f.x[k+f.bias]
}

// set stores v for diagonal k.
func (f *frontier) set(k, v int) {
	f.x[k+f.bias] = v
}

// cover makes diagonals lo..hi addressable. Values already stored for
// previously covered diagonals are kept at their diagonal.
func (f *frontier) cover(lo, hi int) {
	if len(f.x) > 0 && lo+f.bias >= 0 && hi+f.bias < len(f.x) {
		return
	}

	oldLen := len(f.x)
	oldLo := -f.bias
	if oldLen > 0 {
		lo = min(lo, oldLo)
		hi = max(hi, oldLo+oldLen-1)
	}

	// leave headroom on both sides so the next few distances fit
	width := hi - lo + 1
	pad := width/2 + 1
	size := width + 2*pad
	bias := pad - lo

	var next []int
	if oldLen == 0 && cap(f.x) >= size {
		next = f.x[:size]
	} else {
		next = make([]int, size)
		if oldLen > 0 {
			copy(next[oldLo+bias:], f.x)
		}
	}
	f.x, f.bias = next, bias
}
