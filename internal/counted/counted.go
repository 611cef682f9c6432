/*
Package counted implements an instance tracking value for leak detection.

Every Value is registered in its Registry from creation until Release.
Using or releasing a Value that is not registered is recorded as a violation.
*/
package counted

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v2"
)

// FaultPoint may fail creation of new instances.
type FaultPoint interface {
	Point() error
}

// Registry tracks live instances.
type Registry struct {
	faults     FaultPoint
	live       *xsync.MapOf[uint64, int]
	nextID     atomic.Uint64
	mu         sync.Mutex
	violations []string
}

// NewRegistry creates an empty registry. faults may be nil.
func NewRegistry(faults FaultPoint) *Registry {
	return &Registry{
		faults: faults,
		live: xsync.NewTypedMapOf[uint64, int](func(seed maphash.Seed, id uint64) uint64 {
			var h maphash.Hash
			h.SetSeed(seed)

			var b [8]byte
			binary.LittleEndian.PutUint64(b[:], id)
			_, _ = h.Write(b[:])

			return h.Sum64()
		}),
	}
}

// Value is a tracked integer.
type Value struct {
	reg  *Registry
	id   uint64
	data int
}

// New creates a tracked value.
func (r *Registry) New(data int) (*Value, error) {
	if r.faults != nil {
		if err := r.faults.Point(); err != nil {
			return nil, err
		}
	}

	v := &Value{
		reg:  r,
		id:   r.nextID.Add(1),
		data: data,
	}

	if _, loaded := r.live.LoadOrStore(v.id, data); loaded {
		r.violate("instance %d registered twice", v.id)
	}

	return v, nil
}

// Clone creates a new tracked value holding the same data.
func (v *Value) Clone() (*Value, error) {
	v.reg.expectLive(v, "clone")
	return v.reg.New(v.data)
}

// Release deregisters the value.
func (v *Value) Release() {
	if _, ok := v.reg.live.LoadAndDelete(v.id); !ok {
		v.reg.violate("instance %d released twice", v.id)
	}
}

// Int returns the tracked data.
func (v *Value) Int() int {
	v.reg.expectLive(v, "read")
	return v.data
}

// Live returns the number of live instances.
func (r *Registry) Live() int {
	return r.live.Size()
}

// Violations returns the recorded ownership violations.
func (r *Registry) Violations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.violations...)
}

// Snapshot is a set of live instance ids.
type Snapshot map[uint64]struct{}

// Snapshot captures the current live instances.
func (r *Registry) Snapshot() Snapshot {
	s := make(Snapshot, r.live.Size())
	r.live.Range(func(id uint64, _ int) bool {
		s[id] = struct{}{}
		return true
	})
	return s
}

// Diff returns the instances created and released since s was taken.
func (r *Registry) Diff(s Snapshot) (added, removed []uint64) {
	now := r.Snapshot()

	for id := range now {
		if _, ok := s[id]; !ok {
			added = append(added, id)
		}
	}

	for id := range s {
		if _, ok := now[id]; !ok {
			removed = append(removed, id)
		}
	}

	slices.Sort(added)
	slices.Sort(removed)

	return added, removed
}

func (r *Registry) expectLive(v *Value, op string) {
	if _, ok := r.live.Load(v.id); !ok {
		r.violate("%s of dead instance %d", op, v.id)
	}
}

func (r *Registry) violate(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.violations = append(r.violations, fmt.Sprintf(format, args...))
}
