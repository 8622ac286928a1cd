package bridge

import "unsafe"

// All conversions between Handle and native addresses or sizes live in this file.

const maxNative = uint64(^uintptr(0))

func handleOf(ptr unsafe.Pointer) Handle {
	return Handle(uint64(uintptr(ptr)))
}

// Pointer converts the handle back to a native address. It returns false if the handle is wider than
// a native pointer on this platform, which means it was never produced by Allocate.
func (h Handle) Pointer() (unsafe.Pointer, bool) {
	if uint64(h) > maxNative {
		return nil, false
	}

	return unsafe.Pointer(uintptr(h)), true
}

func nativeSize(size uint64) (uintptr, bool) {
	if size > maxNative {
		return 0, false
	}

	return uintptr(size), true
}
