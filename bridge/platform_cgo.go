//go:build cgo

package bridge

/*
#include <stdlib.h>

// Calling malloc from C keeps cgo's C.malloc wrapper out of the way: that wrapper
// throws on NULL and turns malloc(0) into malloc(1).
static void *rawmem_malloc(size_t size) {
	return malloc(size);
}
*/
import "C"
import "unsafe"

type libcAllocator struct{}

func (libcAllocator) Malloc(size uintptr) unsafe.Pointer {
	return C.rawmem_malloc(C.size_t(size))
}

func (libcAllocator) Free(ptr unsafe.Pointer) {
	C.free(ptr)
}

var platform PlatformAllocator = libcAllocator{}
