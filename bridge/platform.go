package bridge

import "unsafe"

//go:generate mockgen -source platform.go -destination ../internal/mocks/platform.go -package mocks

// PlatformAllocator is the native allocator a Bridge forwards to. Malloc returns nil when it cannot
// satisfy a request. Free must accept nil.
type PlatformAllocator interface {
	Malloc(size uintptr) unsafe.Pointer
	Free(ptr unsafe.Pointer)
}

// Platform returns the process-wide native allocator selected at build time: malloc and free when cgo
// is enabled, anonymous memory maps on unix without cgo, and an allocator that always fails elsewhere
func Platform() PlatformAllocator {
	return platform
}
