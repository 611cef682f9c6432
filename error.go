package list

import "errors"

// ErrAllocation indicates that the allocator refused to create a node.
var ErrAllocation = errors.New("list: node allocation failed")
