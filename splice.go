package list

// Splice moves the elements [first, last) of other before pos without
// copying or reallocating them. other may be l itself, in which case pos
// must not lie inside (first, last).
//
// Iterators to the moved elements stay valid and now refer into l.
func (l *List[V]) Splice(pos Position[V], other *List[V], first, last Position[V]) {
	l.lazyInit()
	other.lazyInit()

	at, f, e := pos.position(), first.position(), last.position()
	require(at != nil && f != nil && e != nil, "invalid iterator")

	if f == e || at == f || at == e {
		return
	}

	if checked && other == l {
		for p := f; p != e; p = p.next {
			require(p != at, "splice position inside the source range")
			require(!p.sentinel, "splice range crosses the end position")
		}
	}

	tail := e.prev

	// Close the gap in the source ring.
	f.prev.next = e
	e.prev = f.prev

	// Hang the range before at.
	at.prev.next = f
	f.prev = at.prev
	tail.next = at
	at.prev = tail
}
