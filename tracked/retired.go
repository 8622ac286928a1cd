package tracked

import (
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/membridge/bridge"
)

type retiredEntry struct {
	handle     bridge.Handle
	generation uint64
}

// retiredSet remembers the most recently deallocated handles, forgetting the oldest once it holds
// limit of them. A handle that is retired, reissued and retired again only counts its latest retirement.
type retiredSet struct {
	handles        *swiss.Map[bridge.Handle, uint64]
	ring           []retiredEntry
	next           int
	nextGeneration uint64
}

func newRetiredSet(limit int) *retiredSet {
	return &retiredSet{
		handles: swiss.NewMap[bridge.Handle, uint64](uint32(limit)),
		ring:    make([]retiredEntry, limit),
	}
}

func (s *retiredSet) Retire(handle bridge.Handle) {
	s.nextGeneration++

	evicted := s.ring[s.next]
	if evicted.generation != 0 {
		current, ok := s.handles.Get(evicted.handle)
		if ok && current == evicted.generation {
			s.handles.Delete(evicted.handle)
		}
	}

	s.ring[s.next] = retiredEntry{handle: handle, generation: s.nextGeneration}
	s.handles.Put(handle, s.nextGeneration)
	s.next = (s.next + 1) % len(s.ring)
}

// Reissue forgets a handle because the platform allocator has handed the same address out again
func (s *retiredSet) Reissue(handle bridge.Handle) {
	s.handles.Delete(handle)
}

func (s *retiredSet) Contains(handle bridge.Handle) bool {
	_, ok := s.handles.Get(handle)
	return ok
}

func (s *retiredSet) Count() int {
	return s.handles.Count()
}

func (s *retiredSet) Clear() {
	s.handles.Clear()
	for i := range s.ring {
		s.ring[i] = retiredEntry{}
	}
	s.next = 0
}
