package diff

// frame is a rectangle viewed in search coordinates: x runs along the
// longer side (extent n) and y along the shorter side (extent m). When
// transposed is set, x indexes the second sequence and y the first.
type frame struct {
	aStart, bStart int
	n, m           int
	transposed     bool
	isCommon       IsCommonFunc
}

// orient builds the search frame for r. The frame keeps the orientation
// the rectangle inherited unless its b-extent, seen in that orientation,
// exceeds its a-extent.
func orient(r rect, transposed bool, isCommon IsCommonFunc) frame {
	aExt, bExt := r.aEnd-r.aStart, r.bEnd-r.bStart
	if transposed {
		aExt, bExt = bExt, aExt
	}
	if bExt > aExt {
		transposed = !transposed
		aExt, bExt = bExt, aExt
	}

	return frame{
		aStart:     r.aStart,
		bStart:     r.bStart,
		n:          aExt,
		m:          bExt,
		transposed: transposed,
		isCommon:   isCommon,
	}
}

// common compares frame point (x, y) through the caller's predicate.
func (f *frame) common(x, y int) bool {
	if f.transposed {
		return f.isCommon(f.aStart+y, f.bStart+x)
	}

	return f.isCommon(f.aStart+x, f.bStart+y)
}

// reverseCommon compares frame point (x, y) counted from the far corner.
func (f *frame) reverseCommon(x, y int) bool {
	return f.common(f.n-1-x, f.m-1-y)
}

// point converts frame point (x, y) back to caller indexes.
func (f *frame) point(x, y int) (a, b int) {
	if f.transposed {
		return f.aStart + y, f.bStart + x
	}

	return f.aStart + x, f.bStart + y
}

// bound returns the largest value not above min(d, ext) that has the
// parity of d. It caps how far the diagonals of a d-path can reach on one
// side: once d exceeds ext, only ext or ext-1 remain reachable.
func bound(d, ext int) int {
	if d <= ext {
		return d
	}
	if (d-ext)%2 == 0 {
		return ext
	}

	return ext - 1
}

// sweep is one direction of the bidirectional search. Diagonal k holds
// points with x-y == k; v[k] is the furthest x of a path of at most d
// non-diagonal moves (same parity as d) ending on k, after sliding along
// common elements.
type sweep struct {
	v      *frontier
	n, m   int
	common func(x, y int) bool
}

// diagonals returns the range of diagonals a d-path can end on.
func (s *sweep) diagonals(d int) (lo, hi int) {
	return -bound(d, s.m), bound(d, s.n)
}

// start returns the x at which diagonal k begins its slide at distance d.
//
// The vertical move keeps x from diagonal k+1, the horizontal move adds one
// to x from diagonal k-1. The vertical move wins ties. The result is clamped
// to the last point of diagonal k inside the rectangle.
func (s *sweep) start(d, k int) int {
	if d == 0 {
		return 0
	}

	lo, hi := s.diagonals(d - 1)
	var x int
	switch {
	case k+1 > hi:
		x = s.v.at(k-1) + 1
	case k-1 < lo:
		x = s.v.at(k + 1)
	default:
		x = s.v.at(k + 1)
		if h := s.v.at(k-1) + 1; h > x {
			x = h
		}
	}

	return min(x, s.n, s.m+k)
}

// slide follows diagonal k from x while elements are common.
func (s *sweep) slide(k, x int) int {
	for x < s.n && x-k < s.m && s.common(x, x-k) {
		x++
	}

	return x
}

// middleSnake finds a snake on a shortest edit path through f and returns
// its start point in frame coordinates and its length (possibly zero).
//
// Forward and backward sweeps alternate, one distance d at a time. The
// backward sweep runs in the frame reflected through its centre, where its
// diagonal kb is forward diagonal delta-kb and its x is n-x. Because every
// path's distance has the parity of delta = n-m, overlap is only tested on
// the side that can complete a path of that parity: after the forward step
// when delta is odd (distance 2d-1), after the backward step when it is
// even (distance 2d).
//
// Requires f.n >= 1 and f.m >= 1.
//
// Complexity: O((n+m)·D) predicate calls, O(D) frontier slots.
func middleSnake(f *frame, fv, bv *frontier) (x, y, length int) {
	fv.reset()
	bv.reset()
	fw := sweep{v: fv, n: f.n, m: f.m, common: f.common}
	bw := sweep{v: bv, n: f.n, m: f.m, common: f.reverseCommon}

	n := f.n
	delta := f.n - f.m
	odd := delta%2 != 0

	for d := 0; ; d++ {
		lo, hi := fw.diagonals(d)

		// Forward step.
		fv.cover(lo, hi)
		for k := lo; k <= hi; k += 2 {
			x0 := fw.start(d, k)
			x1 := fw.slide(k, x0)
			fv.set(k, x1)

			if odd && d > 0 {
				kb := delta - k
				blo, bhi := bw.diagonals(d - 1)
				if kb >= blo && kb <= bhi && x1 >= n-bv.at(kb) {
					return x0, x0 - k, x1 - x0
				}
			}
		}

		// Backward step.
		bv.cover(lo, hi)
		for kb := lo; kb <= hi; kb += 2 {
			x0 := bw.start(d, kb)
			x1 := bw.slide(kb, x0)
			bv.set(kb, x1)

			if !odd {
				k := delta - kb
				if k >= lo && k <= hi && fv.at(k) >= n-x1 {
					xs := n - x1
					return xs, xs - k, x1 - x0
				}
			}
		}
	}
}
