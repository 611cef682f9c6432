/*
Package faultinject enumerates failure points of a deterministic operation.

An Injector re-runs a function, failing exactly one more distinct sequence of
injection points on every run, until the function completes without hitting
a fault.
*/
package faultinject

import (
	"errors"
	"fmt"
)

// ErrInjected is returned by an injection point that was chosen to fail.
var ErrInjected = errors.New("faultinject: injected fault")

// ErrSwallowed indicates that a run completed successfully although a fault was injected.
var ErrSwallowed = errors.New("faultinject: injected fault was not reported")

// Injector is a fault injection harness. The zero value is ready to use.
//
// Injection points only fail while Run is in progress.
type Injector struct {
	// Logf, if set, receives a dump of the enumeration state after every fault.
	Logf func(format string, args ...any)

	skips      []int
	errIndex   int
	skipIndex  int
	enabled    bool
	registered bool
}

// New creates an injector.
func New() *Injector {
	return &Injector{}
}

// ShouldFail reports whether the current injection point must fail.
func (in *Injector) ShouldFail() bool {
	if !in.enabled {
		return false
	}

	if in.errIndex == len(in.skips) {
		in.errIndex++
		in.skips = append(in.skips, 0)
		in.registered = true
		return true
	}

	if in.skipIndex == in.skips[in.errIndex] {
		in.errIndex++
		in.skipIndex = 0
		in.registered = true
		return true
	}

	in.skipIndex++
	return false
}

// Point is an injection point.
func (in *Injector) Point() error {
	if in.ShouldFail() {
		return ErrInjected
	}
	return nil
}

// Allocate is an injection point for allocators.
func (in *Injector) Allocate() error {
	return in.Point()
}

// Run calls f until it returns without an injected fault and returns the
// number of runs. f must return an error wrapping ErrInjected whenever an
// injection point failed. Any other error aborts the enumeration.
func (in *Injector) Run(f func() error) (runs int, err error) {
	if in.enabled {
		panic("faultinject: nested Run")
	}

	in.enabled = true
	defer in.reset()

	for {
		runs++

		err := f()

		switch {
		case err == nil:
			if in.registered {
				return runs, ErrSwallowed
			}
			return runs, nil

		case errors.Is(err, ErrInjected):
			if !in.registered {
				return runs, fmt.Errorf("faultinject: fault reported without injection: %w", err)
			}

			in.dump()

			in.skips = in.skips[:in.errIndex]
			in.skips[len(in.skips)-1]++
			in.errIndex = 0
			in.skipIndex = 0
			in.registered = false

		default:
			return runs, err
		}
	}
}

func (in *Injector) dump() {
	if in.Logf != nil {
		in.Logf("skips: %v, errIndex: %d, skipIndex: %d", in.skips, in.errIndex, in.skipIndex)
	}
}

func (in *Injector) reset() {
	in.enabled = false
	in.skips = nil
	in.errIndex = 0
	in.skipIndex = 0
	in.registered = false
}
