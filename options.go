package list

// Option is a list configuration option.
type Option interface {
	apply(*listOptions)
}

type listOptions struct {
	allocator Allocator
}

func newDefaultListOptions() listOptions {
	return listOptions{
		allocator: heapAllocator{},
	}
}

// WithAllocator option configures the list with an allocator that is consulted
// before every node allocation.
//
// The nil value configures the default allocator which never fails.
func WithAllocator(a Allocator) Option {
	return funcOption(func(opts *listOptions) {
		if a == nil {
			opts.allocator = heapAllocator{}
			return
		}
		opts.allocator = a
	})
}

type funcOption func(*listOptions)

func (o funcOption) apply(opts *listOptions) {
	o(opts)
}
