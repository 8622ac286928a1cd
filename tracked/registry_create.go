package tracked

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/membridge/bridge"
	"github.com/vkngwrapper/membridge/internal/utils"
	"github.com/vkngwrapper/membridge/memutils"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific registry behaviors to activate or deactivate
type CreateFlags int32

const (
	// RegistryCreateExternallySynchronized ensures that the registry will not be synchronized internally.
	// The consumer must guarantee it is used from only one goroutine at a time or is synchronized by
	// some other mechanism.
	RegistryCreateExternallySynchronized CreateFlags = 1 << iota
)

var createFlagNames = []struct {
	flag CreateFlags
	name string
}{
	{RegistryCreateExternallySynchronized, "RegistryCreateExternallySynchronized"},
}

func (f CreateFlags) String() string {
	if f == 0 {
		return "None"
	}

	var names []string
	for _, entry := range createFlagNames {
		if f&entry.flag != 0 {
			names = append(names, entry.name)
			f &^= entry.flag
		}
	}

	if f != 0 {
		names = append(names, fmt.Sprintf("0x%x", int32(f)))
	}

	return strings.Join(names, "|")
}

const (
	// defaultRetiredHandleLimit is the number of deallocated handles remembered for double-free
	// detection when CreateOptions.RetiredHandleLimit is left at zero
	defaultRetiredHandleLimit int = 4096

	// maxRetiredHandleLimit bounds the retired ring, which is allocated up front
	maxRetiredHandleLimit int    = 1 << 20
	initialLiveCapacity   uint32 = 64
)

// CreateOptions contains optional settings when creating a registry
type CreateOptions struct {
	// Flags indicates specific registry behaviors to activate or deactivate
	Flags CreateFlags

	// HeapSizeLimit is the maximum number of requested bytes that may be live at once. Allocations
	// that would go beyond it fail with ErrHeapLimitExceeded without reaching the platform allocator.
	// Zero means no limit.
	HeapSizeLimit int

	// RetiredHandleLimit is the number of deallocated handles the registry remembers so that a second
	// deallocation can be reported as ErrDoubleFree rather than ErrUnknownHandle. Zero selects a default
	// of 4096. Values above 1<<20 are rejected.
	RetiredHandleLimit int

	// MemoryCallbackOptions is an optional set of callbacks that will be executed when the registry
	// allocates or releases platform memory
	MemoryCallbackOptions *MemoryCallbackOptions
}

// New creates a new Registry
//
// logger - Receives debug records for every operation and warnings for leaked blocks. If nil,
// records are discarded
//
// platform - The native allocator blocks are taken from, usually bridge.Platform()
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, platform bridge.PlatformAllocator, options CreateOptions) (*Registry, error) {
	if platform == nil {
		return nil, errors.New("a platform allocator must be provided")
	}

	if options.HeapSizeLimit < 0 {
		return nil, errors.Newf("tracked.CreateOptions.HeapSizeLimit must not be negative, but was %d", options.HeapSizeLimit)
	}

	if options.RetiredHandleLimit < 0 {
		return nil, errors.Newf("tracked.CreateOptions.RetiredHandleLimit must not be negative, but was %d", options.RetiredHandleLimit)
	}

	if options.RetiredHandleLimit > maxRetiredHandleLimit {
		return nil, errors.Newf("tracked.CreateOptions.RetiredHandleLimit must not exceed %d, but was %d", maxRetiredHandleLimit, options.RetiredHandleLimit)
	}

	memutils.DebugCheckPow2(guardAlignment, "guardAlignment")

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	registry := &Registry{
		logger:        logger,
		bridge:        bridge.New(platform),
		createFlags:   options.Flags,
		heapSizeLimit: uint64(options.HeapSizeLimit),
		mutex: utils.OptionalRWMutex{
			UseMutex: options.Flags&RegistryCreateExternallySynchronized == 0,
		},
		live: swiss.NewMap[bridge.Handle, *liveBlock](initialLiveCapacity),
	}

	retiredLimit := options.RetiredHandleLimit
	if retiredLimit == 0 {
		retiredLimit = defaultRetiredHandleLimit
	}
	registry.retired = newRetiredSet(retiredLimit)

	registry.callbacks = &memoryCallbacks{
		Callbacks: options.MemoryCallbackOptions,
		Registry:  registry,
	}

	logger.Debug("Registry::New",
		slog.String("Flags", options.Flags.String()),
		slog.Int("HeapSizeLimit", options.HeapSizeLimit),
		slog.Int("RetiredHandleLimit", retiredLimit),
	)

	return registry, nil
}
