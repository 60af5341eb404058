package utils

// Assert panics when the condition is false. Used for internal
// invariants that indicate a programming error, never for input
// validation: malformed terminal input must not be able to trip one.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
