package list

// Swap exchanges the contents of l and other in constant time.
// Options stay with their list.
func (l *List[V]) Swap(other *List[V]) {
	if l == other {
		return
	}

	l.lazyInit()
	other.lazyInit()

	a, b := &l.anchor, &other.anchor

	a.next, b.next = b.next, a.next
	a.prev, b.prev = b.prev, a.prev

	// An empty list pointed at itself; after the exchange that self-loop
	// points at the other anchor.
	if a.next == b {
		a.next = a
		a.prev = a
	}
	if b.next == a {
		b.next = b
		b.prev = b
	}

	a.next.prev = a
	a.prev.next = a
	b.next.prev = b
	b.prev.next = b
}

// Swap exchanges the contents of two lists.
func Swap[V any](a, b *List[V]) {
	a.Swap(b)
}
