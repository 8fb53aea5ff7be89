//go:build contracts

package contract

const enabled = true

// Assert panics when cond is false. The message should name the violated
// precondition, e.g. "NextPow2: x > 0".
func Assert(cond bool, msg string) {
	if !cond {
		panic("contract violation: " + msg)
	}
}
