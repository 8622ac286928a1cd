package bridge

// Bridge forwards allocate and deallocate requests to a PlatformAllocator. It holds no state besides
// the allocator itself and adds no locking; concurrent use is as safe as the platform allocator is.
type Bridge struct {
	platform PlatformAllocator
}

// New creates a Bridge over the provided platform allocator
func New(platform PlatformAllocator) *Bridge {
	return &Bridge{platform: platform}
}

// Allocate requests at least size bytes from the platform allocator. The block is neither zeroed nor
// aligned beyond the platform default. NullHandle is returned if the request cannot be satisfied,
// including sizes wider than the platform's size_t. A size of zero is passed through, so whether it
// yields NullHandle or a unique handle is up to the platform.
func (b *Bridge) Allocate(size uint64) Handle {
	nsize, ok := nativeSize(size)
	if !ok {
		return NullHandle
	}

	return handleOf(b.platform.Malloc(nsize))
}

// Deallocate returns a block to the platform allocator and always reports StatusOK. The handle must
// have come from Allocate on the same platform and must not have been deallocated already; nothing
// checks this.
func (b *Bridge) Deallocate(handle Handle) Status {
	ptr, ok := handle.Pointer()
	if ok {
		b.platform.Free(ptr)
	}

	return StatusOK
}

var defaultBridge = New(platform)

// Allocate requests size bytes from the process-wide platform allocator
func Allocate(size uint64) Handle {
	return defaultBridge.Allocate(size)
}

// Deallocate releases a block obtained from Allocate
func Deallocate(handle Handle) Status {
	return defaultBridge.Deallocate(handle)
}
