package bridge

import "fmt"

// Handle is the start address of a native block, widened to 64 bits so it can be stored by callers that
// have no pointer type
type Handle uint64

// NullHandle is returned by Allocate when the platform allocator could not satisfy a request
const NullHandle Handle = 0

// Status is the result code returned by Deallocate
type Status int32

// StatusOK is the only status Deallocate ever reports
const StatusOK Status = 0

// Int64 returns the handle bits as a signed integer, which is how they cross a C or JVM boundary
func (h Handle) Int64() int64 {
	return int64(h)
}

func (h Handle) String() string {
	return fmt.Sprintf("0x%x", uint64(h))
}

// HandleFromInt64 reinterprets a signed address received from a foreign caller
func HandleFromInt64(address int64) Handle {
	return Handle(uint64(address))
}

// SizeFromInt64 reinterprets a signed byte count received from a foreign caller. Negative values become
// sizes no allocator can satisfy, so they fail the same way an oversized request does.
func SizeFromInt64(size int64) uint64 {
	return uint64(size)
}
