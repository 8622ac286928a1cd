package memutils

import "math"

// Statistics sums up the blocks currently held by a tracking registry. BlockBytes includes
// guard margins and alignment padding, AllocationBytes counts only what callers asked for.
type Statistics struct {
	BlockCount      int
	AllocationCount int
	BlockBytes      uint64
	AllocationBytes uint64
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.AllocationCount = 0
	s.BlockBytes = 0
	s.AllocationBytes = 0
}

// AddBlock records a single live block: requested is the caller's size, reserved is what was
// actually taken from the platform allocator
func (s *Statistics) AddBlock(requested, reserved uint64) {
	s.BlockCount++
	s.BlockBytes += reserved
	s.AllocationCount++
	s.AllocationBytes += requested
}

type DetailedStatistics struct {
	Statistics
	ZeroSizeCount     int
	AllocationSizeMin uint64
	AllocationSizeMax uint64
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.ZeroSizeCount = 0
	s.AllocationSizeMin = math.MaxUint64
	s.AllocationSizeMax = 0
}

func (s *DetailedStatistics) AddBlock(requested, reserved uint64) {
	s.Statistics.AddBlock(requested, reserved)

	if requested == 0 {
		s.ZeroSizeCount++
	}

	if requested < s.AllocationSizeMin {
		s.AllocationSizeMin = requested
	}

	if requested > s.AllocationSizeMax {
		s.AllocationSizeMax = requested
	}
}
