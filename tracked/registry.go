// Package tracked layers ownership bookkeeping over the raw bridge. A Registry remembers every block it
// hands out, so it can refuse deallocations of handles it never issued or has already released, enforce
// a byte budget, and report what is live.
package tracked

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/membridge/bridge"
	"github.com/vkngwrapper/membridge/internal/utils"
	"github.com/vkngwrapper/membridge/memutils"
	"golang.org/x/exp/slog"
)

// guardAlignment is the alignment of the guard bytes that follow each block in debug builds
const guardAlignment uint64 = 4

type liveBlock struct {
	size        uint64
	reserved    uint64
	guardOffset uint64
	sequence    uint64
	name        string
	userData    any
}

// Registry issues bridge handles and tracks which of them are live
type Registry struct {
	logger        *slog.Logger
	bridge        *bridge.Bridge
	createFlags   CreateFlags
	heapSizeLimit uint64
	callbacks     *memoryCallbacks

	mutex        utils.OptionalRWMutex
	live         *swiss.Map[bridge.Handle, *liveBlock]
	retired      *retiredSet
	liveBytes    uint64
	nextSequence uint64
	destroyed    bool
}

// Allocate takes a block of at least size bytes from the platform allocator and starts tracking it.
//
// If the platform cannot satisfy the request the error wraps memutils.ErrAllocationExhausted. A
// zero-size request that the platform answers with null returns NullHandle and no error, since that is
// a legitimate platform answer; nothing is tracked in that case.
func (r *Registry) Allocate(size uint64) (bridge.Handle, error) {
	r.logger.Debug("Registry::Allocate", slog.Uint64("Size", size))

	handle, err := r.allocate(size)
	if err != nil {
		r.logger.Debug("  Registry::Allocate FAILED", slog.Any("error", err))
	}

	memutils.DebugValidate(r)
	return handle, err
}

func (r *Registry) allocate(size uint64) (bridge.Handle, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.destroyed {
		return bridge.NullHandle, ErrDestroyed
	}

	if r.heapSizeLimit > 0 {
		total, ok := memutils.AddNoOverflow(r.liveBytes, size)
		if !ok || total > r.heapSizeLimit {
			return bridge.NullHandle, errors.Wrapf(ErrHeapLimitExceeded,
				"requested %d bytes with %d of %d bytes already live", size, r.liveBytes, r.heapSizeLimit)
		}
	}

	guardOffset := size
	reserved := size
	if memutils.GuardMargin > 0 {
		var alignedOK, sumOK bool
		guardOffset, alignedOK = memutils.AlignUp(size, guardAlignment)
		reserved, sumOK = memutils.AddNoOverflow(guardOffset, uint64(memutils.GuardMargin))
		if !alignedOK || !sumOK {
			return bridge.NullHandle, errors.Wrapf(memutils.ErrAllocationExhausted, "allocating %d bytes", size)
		}
	}

	handle := r.bridge.Allocate(reserved)
	if handle == bridge.NullHandle {
		if size == 0 {
			return bridge.NullHandle, nil
		}
		return bridge.NullHandle, errors.Wrapf(memutils.ErrAllocationExhausted, "allocating %d bytes", size)
	}

	if r.live.Has(handle) {
		return bridge.NullHandle, errors.AssertionFailedf("platform allocator returned %s, which is still live", handle)
	}

	if memutils.GuardMargin > 0 {
		ptr, _ := handle.Pointer()
		memutils.WriteGuard(ptr, uintptr(guardOffset))
	}

	r.nextSequence++
	r.retired.Reissue(handle)
	r.live.Put(handle, &liveBlock{
		size:        size,
		reserved:    reserved,
		guardOffset: guardOffset,
		sequence:    r.nextSequence,
	})
	r.liveBytes += size

	r.callbacks.Allocate(handle, size)

	return handle, nil
}

// Deallocate releases a block previously returned by Allocate.
//
// NullHandle is accepted and ignored, as free(NULL) is. A handle deallocated recently enough to still be
// remembered fails with ErrDoubleFree; any other handle the registry does not know fails with
// ErrUnknownHandle, and neither reaches the platform allocator. If the guard bytes after the block were
// overwritten, the block is still released and the error wraps memutils.ErrCorruptionDetected.
func (r *Registry) Deallocate(handle bridge.Handle) error {
	r.logger.Debug("Registry::Deallocate", slog.String("Handle", handle.String()))

	err := r.deallocate(handle)
	if err != nil {
		r.logger.Debug("  Registry::Deallocate FAILED", slog.Any("error", err))
	}

	memutils.DebugValidate(r)
	return err
}

func (r *Registry) deallocate(handle bridge.Handle) error {
	if handle == bridge.NullHandle {
		return nil
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.destroyed {
		return ErrDestroyed
	}

	block, ok := r.live.Get(handle)
	if !ok {
		if r.retired.Contains(handle) {
			return errors.Wrapf(ErrDoubleFree, "handle %s", handle)
		}
		return errors.Wrapf(ErrUnknownHandle, "handle %s", handle)
	}

	var err error
	if !r.guardIntact(handle, block) {
		err = errors.Wrapf(memutils.ErrCorruptionDetected, "handle %s of %d bytes", handle, block.size)
	}

	r.live.Delete(handle)
	r.liveBytes -= block.size
	r.retired.Retire(handle)

	r.bridge.Deallocate(handle)
	r.callbacks.Free(handle, block.size)

	return err
}

func (r *Registry) guardIntact(handle bridge.Handle, block *liveBlock) bool {
	if memutils.GuardMargin == 0 {
		return true
	}

	ptr, _ := handle.Pointer()
	return memutils.GuardIntact(ptr, uintptr(block.guardOffset))
}

func (r *Registry) lookup(handle bridge.Handle) (*liveBlock, error) {
	if r.destroyed {
		return nil, ErrDestroyed
	}

	block, ok := r.live.Get(handle)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHandle, "handle %s", handle)
	}

	return block, nil
}

// Size returns the number of bytes requested when handle was allocated
func (r *Registry) Size(handle bridge.Handle) (uint64, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	block, err := r.lookup(handle)
	if err != nil {
		return 0, err
	}

	return block.size, nil
}

// SetName attaches a name to a live block. It appears in BuildStatsString and leak warnings.
func (r *Registry) SetName(handle bridge.Handle, name string) error {
	r.logger.Debug("Registry::SetName", slog.String("Handle", handle.String()), slog.String("Name", name))

	r.mutex.Lock()
	defer r.mutex.Unlock()

	block, err := r.lookup(handle)
	if err != nil {
		return err
	}

	block.name = name
	return nil
}

func (r *Registry) Name(handle bridge.Handle) (string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	block, err := r.lookup(handle)
	if err != nil {
		return "", err
	}

	return block.name, nil
}

// SetUserData attaches an arbitrary value to a live block
func (r *Registry) SetUserData(handle bridge.Handle, userData any) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	block, err := r.lookup(handle)
	if err != nil {
		return err
	}

	block.userData = userData
	return nil
}

func (r *Registry) UserData(handle bridge.Handle) (any, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	block, err := r.lookup(handle)
	if err != nil {
		return nil, err
	}

	return block.userData, nil
}

// IsLive reports whether handle was allocated by this registry and has not been deallocated
func (r *Registry) IsLive(handle bridge.Handle) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.live.Has(handle)
}

func (r *Registry) LiveCount() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.live.Count()
}

// LiveBytes returns the sum of the sizes requested for all live blocks
func (r *Registry) LiveBytes() uint64 {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.liveBytes
}

// CheckCorruption verifies the guard bytes after every live block. Guard bytes are only written when
// built with the debug_mem_utils tag; otherwise this always returns nil.
func (r *Registry) CheckCorruption() error {
	r.logger.Debug("Registry::CheckCorruption")

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var corrupted []bridge.Handle
	r.live.Iter(func(handle bridge.Handle, block *liveBlock) bool {
		if !r.guardIntact(handle, block) {
			corrupted = append(corrupted, handle)
		}
		return false
	})

	if len(corrupted) > 0 {
		return errors.Wrapf(memutils.ErrCorruptionDetected, "%d live blocks, first at %s", len(corrupted), corrupted[0])
	}

	return nil
}

// Destroy releases every block that is still live and retires the registry. Each leaked block is logged
// as a warning, and the returned error wraps ErrLeakedBlocks if there were any.
func (r *Registry) Destroy() error {
	r.logger.Debug("Registry::Destroy")

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.destroyed {
		return ErrDestroyed
	}

	leakedCount := r.live.Count()
	leakedBytes := r.liveBytes

	r.live.Iter(func(handle bridge.Handle, block *liveBlock) bool {
		r.logger.Warn("leaked block",
			slog.String("Handle", handle.String()),
			slog.Uint64("Size", block.size),
			slog.String("Name", block.name),
		)

		r.bridge.Deallocate(handle)
		r.callbacks.Free(handle, block.size)
		return false
	})

	r.live.Clear()
	r.retired.Clear()
	r.liveBytes = 0
	r.destroyed = true

	if leakedCount > 0 {
		return errors.Wrapf(ErrLeakedBlocks, "%d blocks totalling %d bytes", leakedCount, leakedBytes)
	}

	return nil
}

// Validate checks the registry's bookkeeping for internal consistency
func (r *Registry) Validate() error {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var sum uint64
	var err error
	r.live.Iter(func(handle bridge.Handle, block *liveBlock) bool {
		if handle == bridge.NullHandle {
			err = errors.New("the null handle is tracked as live")
			return true
		}

		if block.reserved < block.size || block.guardOffset < block.size {
			err = errors.Newf("block %s reserves %d bytes with guard at %d, but %d were requested",
				handle, block.reserved, block.guardOffset, block.size)
			return true
		}

		if r.retired.Contains(handle) {
			err = errors.Newf("block %s is both live and retired", handle)
			return true
		}

		sum += block.size
		return false
	})
	if err != nil {
		return err
	}

	if sum != r.liveBytes {
		return errors.Newf("live blocks sum to %d bytes, but the registry is tracking %d", sum, r.liveBytes)
	}

	if r.heapSizeLimit > 0 && r.liveBytes > r.heapSizeLimit {
		return errors.Newf("%d bytes are live, past the heap size limit of %d", r.liveBytes, r.heapSizeLimit)
	}

	return nil
}

func (b *liveBlock) customData() string {
	if b.userData == nil {
		return ""
	}

	return fmt.Sprintf("%+v", b.userData)
}
