//go:build debug_mem_utils

package memutils

import "unsafe"

const (
	// GuardMargin is the number of guard bytes a tracking registry places after each block it hands out.
	// It is zero unless the debug_mem_utils build tag is present.
	GuardMargin uintptr = 16

	guardPattern uint32 = 0x7F84E666
	guardWord           = unsafe.Sizeof(guardPattern)
)

// WriteGuard fills GuardMargin bytes at block+offset with a recognizable pattern.
// offset must be a multiple of 4.
func WriteGuard(block unsafe.Pointer, offset uintptr) {
	for i := uintptr(0); i < GuardMargin; i += guardWord {
		*(*uint32)(unsafe.Add(block, offset+i)) = guardPattern
	}
}

// GuardIntact reports whether the guard bytes written by WriteGuard at block+offset are unchanged.
func GuardIntact(block unsafe.Pointer, offset uintptr) bool {
	for i := uintptr(0); i < GuardMargin; i += guardWord {
		if *(*uint32)(unsafe.Add(block, offset+i)) != guardPattern {
			return false
		}
	}

	return true
}

// DebugValidate will call Validate on the provided object and panics if any errors are returned. This
// method no-ops unless the debug_mem_utils build tag is present
func DebugValidate(validatable Validatable) {
	err := validatable.Validate()
	if err != nil {
		panic(err)
	}
}

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_mem_utils build tag is present.
func DebugCheckPow2[T Number](value T, name string) {
	err := CheckPow2[T](value, name)
	if err != nil {
		panic(err)
	}
}
