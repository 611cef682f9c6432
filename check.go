package list

import (
	"errors"
	"fmt"
)

// validate checks ring closure and anchor tagging.
func (l *List[V]) validate() error {
	a := &l.anchor
	if a.next == nil && a.prev == nil {
		return nil
	}
	if !a.sentinel {
		return errors.New("list: anchor is not a sentinel")
	}
	if (a.next == a) != (a.prev == a) {
		return errors.New("list: broken anchor self-loop")
	}

	p := a
	for i := 0; ; i++ {
		if p.next == nil || p.prev == nil {
			return fmt.Errorf("list: node %d is detached", i)
		}
		if p.next.prev != p || p.prev.next != p {
			return fmt.Errorf("list: ring is not closed at node %d", i)
		}
		if p != a && p.sentinel {
			return fmt.Errorf("list: foreign sentinel at node %d", i)
		}
		if p = p.next; p == a {
			return nil
		}
	}
}
