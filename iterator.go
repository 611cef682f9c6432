package list

// Position is a list position accepted by the modifying operations.
// Both Iterator and ConstIterator are positions.
type Position[V any] interface {
	position() *node[V]
}

// Iterator is a bidirectional iterator over list values.
//
// An iterator stays valid until the element it refers to is erased.
// Iterators are compared by position, never by value.
type Iterator[V any] struct {
	n *node[V]
}

func (it Iterator[V]) position() *node[V] {
	return it.n
}

// Next returns an iterator to the following position.
// The successor of the last element is the end position.
func (it Iterator[V]) Next() Iterator[V] {
	require(it.n != nil && it.n.next != nil, "invalid iterator")
	return Iterator[V]{n: it.n.next}
}

// Prev returns an iterator to the preceding position.
// The predecessor of the end position is the last element.
func (it Iterator[V]) Prev() Iterator[V] {
	require(it.n != nil && it.n.prev != nil, "invalid iterator")
	return Iterator[V]{n: it.n.prev}
}

// Value returns the value at the iterator position.
func (it Iterator[V]) Value() V {
	return *it.Ref()
}

// Ref returns a pointer to the value at the iterator position.
func (it Iterator[V]) Ref() *V {
	require(it.n != nil && !it.n.sentinel, "dereference of end position")
	return &it.n.value
}

// Set replaces the value at the iterator position and returns the previous
// value. Ownership of the previous value passes to the caller.
func (it Iterator[V]) Set(v V) (old V) {
	p := it.Ref()
	old, *p = *p, v
	return old
}

// Equal reports whether it and pos refer to the same position.
func (it Iterator[V]) Equal(pos Position[V]) bool {
	return it.n == pos.position()
}

// Const returns a read-only iterator to the same position.
func (it Iterator[V]) Const() ConstIterator[V] {
	return ConstIterator[V]{n: it.n}
}

// ConstIterator is a read-only bidirectional iterator over list values.
type ConstIterator[V any] struct {
	n *node[V]
}

func (it ConstIterator[V]) position() *node[V] {
	return it.n
}

// Next returns an iterator to the following position.
func (it ConstIterator[V]) Next() ConstIterator[V] {
	require(it.n != nil && it.n.next != nil, "invalid iterator")
	return ConstIterator[V]{n: it.n.next}
}

// Prev returns an iterator to the preceding position.
func (it ConstIterator[V]) Prev() ConstIterator[V] {
	require(it.n != nil && it.n.prev != nil, "invalid iterator")
	return ConstIterator[V]{n: it.n.prev}
}

// Value returns the value at the iterator position.
func (it ConstIterator[V]) Value() V {
	require(it.n != nil && !it.n.sentinel, "dereference of end position")
	return it.n.value
}

// Equal reports whether it and pos refer to the same position.
func (it ConstIterator[V]) Equal(pos Position[V]) bool {
	return it.n == pos.position()
}
