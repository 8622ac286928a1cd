//go:build !cgo && !unix

package bridge

import "unsafe"

// unavailableAllocator is used where neither cgo nor anonymous maps are available. Every request
// reports exhaustion.
type unavailableAllocator struct{}

func (unavailableAllocator) Malloc(size uintptr) unsafe.Pointer {
	return nil
}

func (unavailableAllocator) Free(ptr unsafe.Pointer) {
}

var platform PlatformAllocator = unavailableAllocator{}
