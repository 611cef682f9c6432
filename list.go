/*
Package list implements a generic circular doubly linked list anchored on a
sentinel node, with constant time insertion, removal and splicing of ranges
between lists.
*/
package list

import "iter"

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list.
// A List must not be copied by value after first use; use Clone or Assign.
type List[V any] struct {
	anchor node[V]
	opts   listOptions
}

// New creates an empty list.
func New[V any](opts ...Option) *List[V] {
	l := &List[V]{
		opts: newDefaultListOptions(),
	}

	for _, opt := range opts {
		opt.apply(&l.opts)
	}

	l.anchor.initSentinel()

	return l
}

func (l *List[V]) lazyInit() {
	if l.anchor.next == nil {
		l.anchor.initSentinel()
	}
	if l.opts.allocator == nil {
		l.opts = newDefaultListOptions()
	}
}

// Empty reports whether the list has no elements.
func (l *List[V]) Empty() bool {
	return l.anchor.next == nil || l.anchor.next == &l.anchor
}

// Len counts the elements of the list. It walks the whole ring.
func (l *List[V]) Len() int {
	n := 0
	for p := l.anchor.next; p != nil && p != &l.anchor; p = p.next {
		n++
	}
	return n
}

// Clear destroys every element of the list.
func (l *List[V]) Clear() {
	l.lazyInit()

	p := l.anchor.next
	for p != &l.anchor {
		next := p.next
		p.next = nil
		p.prev = nil
		releaseValue(p.value)
		var zero V
		p.value = zero
		p = next
	}

	l.anchor.initSentinel()
}

// Clone returns an independent copy of the list configured with the same options.
// If any allocation fails, the partial copy is destroyed and l is left untouched.
func (l *List[V]) Clone() (*List[V], error) {
	l.lazyInit()

	return l.cloneWith(l.opts)
}

func (l *List[V]) cloneWith(opts listOptions) (*List[V], error) {
	c := &List[V]{opts: opts}
	c.anchor.initSentinel()

	for p := l.anchor.next; p != nil && p != &l.anchor; p = p.next {
		if err := c.opts.allocator.Allocate(); err != nil {
			c.Clear()
			return nil, wrapAllocation(err)
		}

		v, err := cloneValue(p.value)
		if err != nil {
			c.Clear()
			return nil, err
		}

		c.anchor.linkBefore(&node[V]{value: v})
	}

	return c, nil
}

// Assign replaces the contents of l with a copy of src.
// On failure l is left exactly as it was.
func (l *List[V]) Assign(src *List[V]) error {
	l.lazyInit()

	tmp, err := src.cloneWith(l.opts)
	if err != nil {
		return err
	}

	l.Swap(tmp)
	tmp.Clear()

	return nil
}

// Begin returns an iterator to the first element.
func (l *List[V]) Begin() Iterator[V] {
	l.lazyInit()
	return Iterator[V]{n: l.anchor.next}
}

// End returns an iterator to the position past the last element.
func (l *List[V]) End() Iterator[V] {
	l.lazyInit()
	return Iterator[V]{n: &l.anchor}
}

// CBegin returns a read-only iterator to the first element.
func (l *List[V]) CBegin() ConstIterator[V] {
	return l.Begin().Const()
}

// CEnd returns a read-only iterator to the position past the last element.
func (l *List[V]) CEnd() ConstIterator[V] {
	return l.End().Const()
}

// Front returns the first value.
func (l *List[V]) Front() V {
	return *l.FrontRef()
}

// Back returns the last value.
func (l *List[V]) Back() V {
	return *l.BackRef()
}

// FrontRef returns a pointer to the first value.
func (l *List[V]) FrontRef() *V {
	require(!l.Empty(), "front of empty list")
	return &l.anchor.next.value
}

// BackRef returns a pointer to the last value.
func (l *List[V]) BackRef() *V {
	require(!l.Empty(), "back of empty list")
	return &l.anchor.prev.value
}

// PushBack inserts a value at the back of the list.
func (l *List[V]) PushBack(v V) error {
	_, err := l.Insert(l.End(), v)
	return err
}

// PushFront inserts a value at the front of the list.
func (l *List[V]) PushFront(v V) error {
	_, err := l.Insert(l.Begin(), v)
	return err
}

// PopBack destroys the last element.
func (l *List[V]) PopBack() {
	require(!l.Empty(), "pop from empty list")
	l.Erase(l.End().Prev())
}

// PopFront destroys the first element.
func (l *List[V]) PopFront() {
	require(!l.Empty(), "pop from empty list")
	l.Erase(l.Begin())
}

// Insert inserts a value before pos and returns an iterator to it.
// The list takes ownership of v only when Insert succeeds.
func (l *List[V]) Insert(pos Position[V], v V) (Iterator[V], error) {
	l.lazyInit()

	at := pos.position()
	require(at != nil && at.next != nil, "invalid iterator")

	n, err := l.newNode(v)
	if err != nil {
		return Iterator[V]{}, err
	}

	at.linkBefore(n)

	return Iterator[V]{n: n}, nil
}

// Erase destroys the element at pos and returns an iterator to the following position.
func (l *List[V]) Erase(pos Position[V]) Iterator[V] {
	n := pos.position()
	require(n != nil && n.next != nil, "invalid iterator")
	require(!n.sentinel, "erase of end position")

	next := n.next
	n.unlink()
	releaseValue(n.value)

	var zero V
	n.value = zero

	return Iterator[V]{n: next}
}

// EraseRange destroys the elements in [first, last) and returns last.
func (l *List[V]) EraseRange(first, last Position[V]) Iterator[V] {
	p, end := first.position(), last.position()
	for p != end {
		p = l.Erase(Iterator[V]{n: p}).n
	}

	return Iterator[V]{n: end}
}

// Do calls function f on each value of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List[V]) Do(f func(v V) bool) {
	for p := l.anchor.next; p != nil && p != &l.anchor; p = p.next {
		if !f(p.value) {
			return
		}
	}
}

// All returns an iterator over the values of the list, front to back.
func (l *List[V]) All() iter.Seq[V] {
	return l.Do
}

// Backward returns an iterator over the values of the list, back to front.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		for p := l.anchor.prev; p != nil && p != &l.anchor; p = p.prev {
			if !yield(p.value) {
				return
			}
		}
	}
}
