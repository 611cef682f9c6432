package list

import "fmt"

// Cloner is implemented by values that must be deep copied when a list is
// copied with Clone or Assign. Values that do not implement Cloner are copied
// by assignment.
type Cloner[V any] interface {
	Clone() (V, error)
}

// Releaser is implemented by values that hold resources. Release is called
// once when the node holding the value is destroyed.
type Releaser interface {
	Release()
}

func cloneValue[V any](v V) (V, error) {
	c, ok := any(v).(Cloner[V])
	if !ok {
		return v, nil
	}

	cv, err := c.Clone()
	if err != nil {
		var zero V
		return zero, fmt.Errorf("list: clone value: %w", err)
	}

	return cv, nil
}

func releaseValue[V any](v V) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}
