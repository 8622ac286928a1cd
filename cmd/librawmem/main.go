// Command librawmem builds the bridge as a C shared library:
//
//	go build -buildmode=c-shared -o librawmem.so ./cmd/librawmem
//
// Foreign runtimes load it and call rawmem_allocate and rawmem_deallocate. Handles and sizes cross the
// boundary as signed 64-bit integers because that is what runtimes without unsigned or pointer types
// can hold.
package main

// #include <stdint.h>
import "C"

import "github.com/vkngwrapper/membridge/bridge"

// rawmem_allocate returns the address of a new block of at least size bytes, or 0 if it could not be
// allocated. Negative sizes always fail.
//
//export rawmem_allocate
func rawmem_allocate(size C.int64_t) C.int64_t {
	return C.int64_t(allocate(int64(size)))
}

// rawmem_deallocate releases a block returned by rawmem_allocate and always returns 0.
//
//export rawmem_deallocate
func rawmem_deallocate(address C.int64_t) C.int32_t {
	return C.int32_t(deallocate(int64(address)))
}

func allocate(size int64) int64 {
	return bridge.Allocate(bridge.SizeFromInt64(size)).Int64()
}

func deallocate(address int64) int32 {
	return int32(bridge.Deallocate(bridge.HandleFromInt64(address)))
}

func main() {}
