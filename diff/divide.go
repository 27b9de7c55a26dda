package diff

// task is one entry of the divider's work stack: either a rectangle still
// to be divided, or a run waiting for everything before it to be reported.
type task struct {
	area       rect
	transposed bool // orientation inherited from the parent rectangle
	found      run  // reported when found.n > 0; area is ignored then
}

// divider drives the divide-and-conquer search for one Diff call.
// All of its state is dropped when the call returns.
type divider struct {
	isCommon IsCommonFunc
	out      merger
	stack    []task
	fv, bv   frontier
}

// newDivider prepares a divider that reports through found.
func newDivider(isCommon IsCommonFunc, found FoundSubsequenceFunc) *divider {
	return &divider{
		isCommon: isCommon,
		out:      merger{found: found},
		stack:    make([]task, 0, 16),
	}
}

// run divides r and reports every common run of an optimal alignment in
// increasing index order.
//
// Each rectangle is trimmed, its prefix reported at once, and its middle
// split at the middle snake. The pieces are pushed in reverse reporting
// order (suffix, after, snake, before) so the stack pops "before" next.
func (dv *divider) run(r rect) {
	dv.push(task{area: r})

	for len(dv.stack) > 0 {
		t := dv.stack[len(dv.stack)-1]
		dv.stack = dv.stack[:len(dv.stack)-1]

		if t.found.n > 0 {
			dv.out.emit(t.found)
			continue
		}
		dv.divide(t.area, t.transposed)
	}

	dv.out.flush()
}

// divide handles one rectangle taken from the stack.
func (dv *divider) divide(r rect, transposed bool) {
	prefix, suffix := trim(r, dv.isCommon)
	if prefix > 0 {
		dv.out.emit(run{n: prefix, a: r.aStart, b: r.bStart})
	}

	inner := rect{
		aStart: r.aStart + prefix, aEnd: r.aEnd - suffix,
		bStart: r.bStart + prefix, bEnd: r.bEnd - suffix,
	}
	tail := run{n: suffix, a: inner.aEnd, b: inner.bEnd}
	if inner.empty() {
		if suffix > 0 {
			dv.out.emit(tail)
		}
		return
	}

	f := orient(inner, transposed, dv.isCommon)
	x, y, length := middleSnake(&f, &dv.fv, &dv.bv)
	aMid, bMid := f.point(x, y)

	before := rect{aStart: inner.aStart, aEnd: aMid, bStart: inner.bStart, bEnd: bMid}
	after := rect{aStart: aMid + length, aEnd: inner.aEnd, bStart: bMid + length, bEnd: inner.bEnd}
	if before == inner || after == inner {
		panic("diff: middle snake did not split the rectangle")
	}

	if suffix > 0 {
		dv.push(task{found: tail})
	}
	if !after.empty() {
		dv.push(task{area: after, transposed: f.transposed})
	}
	if length > 0 {
		dv.push(task{found: run{n: length, a: aMid, b: bMid}})
	}
	if !before.empty() {
		dv.push(task{area: before, transposed: f.transposed})
	}
}

// push adds t on top of the work stack.
func (dv *divider) push(t task) {
	dv.stack = append(dv.stack, t)
}

// merger joins runs that touch end to start before passing them on, so
// the sink only ever sees maximal runs.
type merger struct {
	found   FoundSubsequenceFunc
	pending run
}

// emit queues r, extending the pending run when r continues it.
func (m *merger) emit(r run) {
	p := &m.pending
	if p.n > 0 && p.a+p.n == r.a && p.b+p.n == r.b {
		p.n += r.n
		return
	}
	m.flush()
	m.pending = r
}

// flush reports the pending run, if any.
func (m *merger) flush() {
	if m.pending.n == 0 {
		return
	}
	r := m.pending
	m.pending = run{}
	m.found(r.n, r.a, r.b)
}
