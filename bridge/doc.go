// Package bridge hands raw native memory to callers that can only carry integers.
//
// Allocate asks the platform allocator (malloc under cgo) for a block and returns its address as a
// Handle. Deallocate gives the block back. Nothing is recorded in between: the bridge keeps no registry,
// does not zero memory, and cannot tell a live handle from a stale one. Callers that need those
// guarantees should go through the tracked package instead.
package bridge
