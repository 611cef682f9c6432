//go:build !listunchecked

package list

const checked = true

// require panics when a caller precondition does not hold.
func require(ok bool, msg string) {
	if !ok {
		panic("list: " + msg)
	}
}
