package list

import "fmt"

// Allocator is consulted once before each list node is created.
// A non-nil error aborts the operation before any link is modified.
type Allocator interface {
	Allocate() error
}

type heapAllocator struct{}

func (heapAllocator) Allocate() error {
	return nil
}

func wrapAllocation(err error) error {
	return fmt.Errorf("%w: %w", ErrAllocation, err)
}

// newNode creates a detached value node.
func (l *List[V]) newNode(v V) (*node[V], error) {
	if err := l.opts.allocator.Allocate(); err != nil {
		return nil, wrapAllocation(err)
	}

	return &node[V]{value: v}, nil
}
