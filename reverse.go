package list

// ReverseIterator walks a list back to front.
// It wraps a forward iterator one position past the element it yields.
type ReverseIterator[V any] struct {
	base Iterator[V]
}

// RBegin returns a reverse iterator to the last element.
func (l *List[V]) RBegin() ReverseIterator[V] {
	return ReverseIterator[V]{base: l.End()}
}

// REnd returns a reverse iterator to the position before the first element.
func (l *List[V]) REnd() ReverseIterator[V] {
	return ReverseIterator[V]{base: l.Begin()}
}

// Base returns the underlying forward iterator.
func (it ReverseIterator[V]) Base() Iterator[V] {
	return it.base
}

// Next moves towards the front of the list.
func (it ReverseIterator[V]) Next() ReverseIterator[V] {
	return ReverseIterator[V]{base: it.base.Prev()}
}

// Prev moves towards the back of the list.
func (it ReverseIterator[V]) Prev() ReverseIterator[V] {
	return ReverseIterator[V]{base: it.base.Next()}
}

// Value returns the value at the iterator position.
func (it ReverseIterator[V]) Value() V {
	return it.base.Prev().Value()
}

// Ref returns a pointer to the value at the iterator position.
func (it ReverseIterator[V]) Ref() *V {
	return it.base.Prev().Ref()
}

// Const returns a read-only reverse iterator to the same position.
func (it ReverseIterator[V]) Const() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{base: it.base.Const()}
}

// ConstReverseIterator is a read-only ReverseIterator.
type ConstReverseIterator[V any] struct {
	base ConstIterator[V]
}

// CRBegin returns a read-only reverse iterator to the last element.
func (l *List[V]) CRBegin() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{base: l.CEnd()}
}

// CREnd returns a read-only reverse iterator to the position before the first element.
func (l *List[V]) CREnd() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{base: l.CBegin()}
}

// Base returns the underlying forward iterator.
func (it ConstReverseIterator[V]) Base() ConstIterator[V] {
	return it.base
}

// Next moves towards the front of the list.
func (it ConstReverseIterator[V]) Next() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{base: it.base.Prev()}
}

// Prev moves towards the back of the list.
func (it ConstReverseIterator[V]) Prev() ConstReverseIterator[V] {
	return ConstReverseIterator[V]{base: it.base.Next()}
}

// Value returns the value at the iterator position.
func (it ConstReverseIterator[V]) Value() V {
	return it.base.Prev().Value()
}
