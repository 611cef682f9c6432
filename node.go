package list

// node is a ring position. The list anchor and the value nodes share this
// layout; the anchor is tagged as sentinel and its value is never read.
type node[V any] struct {
	next, prev *node[V]
	value      V
	sentinel   bool
}

// initSentinel turns n into an empty ring anchor.
func (n *node[V]) initSentinel() {
	n.next = n
	n.prev = n
	n.sentinel = true
}

// linkBefore inserts s before this node.
func (n *node[V]) linkBefore(s *node[V]) {
	p := n.prev
	p.next = s
	s.prev = p
	s.next = n
	n.prev = s
}

// unlink removes this node from its ring and clears its links.
func (n *node[V]) unlink() {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
}
