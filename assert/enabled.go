//go:build !assertions_disabled

package assert

import "fmt"

// True panics unless value is true. The optional args form the panic message:
// when the first arg is a string it is treated as a format string for the
// remaining args.
func True(value bool, args ...any) {
	if value {
		return
	}

	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

// False panics unless value is false. Args follow the True formatting rules.
func False(value bool, args ...any) {
	True(!value, args...)
}

// NotNil panics when value is nil. Args follow the True formatting rules.
func NotNil(value any, args ...any) {
	True(value != nil, args...)
}
