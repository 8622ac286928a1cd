// Package memview reads and writes the native blocks behind bridge handles. It knows nothing about
// block sizes: every call trusts the caller to stay inside the block it was given.
package memview

import (
	"unsafe"

	"github.com/vkngwrapper/membridge/bridge"
)

// Bytes returns a slice aliasing size bytes starting at handle. It returns nil for NullHandle, for
// sizes that are zero or negative, and for handles that are not native addresses on this platform.
// The slice is only valid until the handle is deallocated.
func Bytes(handle bridge.Handle, size int) []byte {
	if handle == bridge.NullHandle || size <= 0 {
		return nil
	}

	ptr, ok := handle.Pointer()
	if !ok {
		return nil
	}

	return unsafe.Slice((*byte)(ptr), size)
}

// Write copies data to the start of the block and returns the number of bytes written
func Write(handle bridge.Handle, data []byte) int {
	return copy(Bytes(handle, len(data)), data)
}

// WriteAt copies data into the block starting offset bytes in
func WriteAt(handle bridge.Handle, offset int, data []byte) int {
	if offset < 0 {
		return 0
	}

	block := Bytes(handle, offset+len(data))
	if block == nil {
		return 0
	}

	return copy(block[offset:], data)
}

// Read copies len(out) bytes from the start of the block into out and returns the number of bytes read
func Read(handle bridge.Handle, out []byte) int {
	return copy(out, Bytes(handle, len(out)))
}

// Fill sets the first size bytes of the block to value
func Fill(handle bridge.Handle, size int, value byte) {
	block := Bytes(handle, size)
	for i := range block {
		block[i] = value
	}
}
