package memutils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/membridge/memutils"
)

func TestDetailedStatistics(t *testing.T) {
	var stats memutils.DetailedStatistics
	stats.Clear()

	require.Equal(t, memutils.DetailedStatistics{
		AllocationSizeMin: math.MaxUint64,
	}, stats)

	stats.AddBlock(100, 116)
	stats.AddBlock(0, 16)
	stats.AddBlock(300, 316)

	require.Equal(t, memutils.DetailedStatistics{
		Statistics: memutils.Statistics{
			BlockCount:      3,
			AllocationCount: 3,
			BlockBytes:      448,
			AllocationBytes: 400,
		},
		ZeroSizeCount:     1,
		AllocationSizeMin: 0,
		AllocationSizeMax: 300,
	}, stats)

	stats.Clear()
	stats.AddBlock(1000, 1000)
	require.Equal(t, 1, stats.AllocationCount)
	require.Equal(t, uint64(1000), stats.AllocationSizeMin)
	require.Equal(t, uint64(1000), stats.AllocationSizeMax)
}

func TestStatisticsClear(t *testing.T) {
	var total memutils.Statistics
	total.AddBlock(8, 10)
	total.AddBlock(8, 10)
	require.Equal(t, memutils.Statistics{BlockCount: 2, AllocationCount: 2, BlockBytes: 20, AllocationBytes: 16}, total)

	total.Clear()
	require.Equal(t, memutils.Statistics{}, total)
}
