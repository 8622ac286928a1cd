//go:build !debug_mem_utils

package memutils

import "unsafe"

const (
	// GuardMargin is the number of guard bytes a tracking registry places after each block it hands out.
	// It is zero unless the debug_mem_utils build tag is present.
	GuardMargin uintptr = 0
)

// GuardIntact reports whether the guard bytes written by WriteGuard at block+offset are unchanged.
// Without the debug_mem_utils build tag there are no guard bytes and it always returns true.
func GuardIntact(block unsafe.Pointer, offset uintptr) bool {
	return true
}

// WriteGuard fills GuardMargin bytes at block+offset with a recognizable pattern.
// This method no-ops unless the debug_mem_utils build tag is present.
func WriteGuard(block unsafe.Pointer, offset uintptr) {
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_mem_utils build tag is present
func DebugValidate(validatable Validatable) {
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_mem_utils build tag is present.
func DebugCheckPow2[T Number](value T, name string) {

}
