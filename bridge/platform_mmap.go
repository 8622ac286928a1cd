//go:build !cgo && unix

package bridge

import (
	"math"
	"unsafe"

	"github.com/vkngwrapper/membridge/memutils"
	"golang.org/x/sys/unix"
)

// mmapHeader bytes in front of every block hold the length of the whole mapping, since Free only
// receives the address
const mmapHeader uintptr = 16

// mmapAllocator stands in for malloc when the binary is built without cgo. Every block is its own
// anonymous mapping, so it is only suited to the large, long-lived buffers foreign callers tend to ask for.
type mmapAllocator struct{}

func (mmapAllocator) Malloc(size uintptr) unsafe.Pointer {
	total, ok := memutils.AddNoOverflow(size, mmapHeader)
	if !ok || total > math.MaxInt {
		return nil
	}

	mem, err := unix.Mmap(-1, 0, int(total), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil
	}

	base := unsafe.Pointer(unsafe.SliceData(mem))
	*(*uintptr)(base) = total
	return unsafe.Add(base, mmapHeader)
}

func (mmapAllocator) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	base := unsafe.Add(ptr, -int(mmapHeader))
	total := *(*uintptr)(base)
	// munmap failures cannot be reported through free semantics
	_ = unix.Munmap(unsafe.Slice((*byte)(base), total))
}

var platform PlatformAllocator = mmapAllocator{}
