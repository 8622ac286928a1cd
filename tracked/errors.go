package tracked

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownHandle is returned when a handle was not issued by the registry, or was retired long enough
	// ago that the registry no longer remembers it
	ErrUnknownHandle = errors.New("handle is not a live block of this registry")
	// ErrDoubleFree is returned when a handle that has already been deallocated is deallocated again
	ErrDoubleFree = errors.New("handle has already been deallocated")
	// ErrHeapLimitExceeded is returned when an allocation would take the registry past CreateOptions.HeapSizeLimit
	ErrHeapLimitExceeded = errors.New("allocation would exceed the registry's heap size limit")
	// ErrLeakedBlocks is returned from Destroy when blocks were still live
	ErrLeakedBlocks = errors.New("registry destroyed with live blocks")
	// ErrDestroyed is returned from every operation on a registry after Destroy has been called
	ErrDestroyed = errors.New("registry has been destroyed")
)
