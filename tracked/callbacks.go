package tracked

import "github.com/vkngwrapper/membridge/bridge"

type AllocateBlockCallback func(
	registry *Registry,
	handle bridge.Handle,
	size uint64,
	userData interface{},
)

type FreeBlockCallback func(
	registry *Registry,
	handle bridge.Handle,
	size uint64,
	userData interface{},
)

// MemoryCallbackOptions holds callbacks that run whenever the registry takes a block from, or returns a
// block to, the platform allocator. They run while the registry is locked and must not call back into it.
type MemoryCallbackOptions struct {
	Allocate AllocateBlockCallback
	Free     FreeBlockCallback
	UserData interface{}
}

type memoryCallbacks struct {
	Callbacks *MemoryCallbackOptions
	Registry  *Registry
}

func (c *memoryCallbacks) Allocate(handle bridge.Handle, size uint64) {
	if c.Callbacks != nil && c.Callbacks.Allocate != nil {
		c.Callbacks.Allocate(c.Registry, handle, size, c.Callbacks.UserData)
	}
}

func (c *memoryCallbacks) Free(handle bridge.Handle, size uint64) {
	if c.Callbacks != nil && c.Callbacks.Free != nil {
		c.Callbacks.Free(c.Registry, handle, size, c.Callbacks.UserData)
	}
}
