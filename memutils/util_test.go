package memutils_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/membridge/memutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, memutils.CheckPow2(16, "alignment"))
	require.NoError(t, memutils.CheckPow2(uint64(1), "alignment"))

	err := memutils.CheckPow2(12, "alignment")
	require.True(t, errors.Is(err, memutils.PowerOfTwoError))
	require.Contains(t, err.Error(), "alignment is 12")
}

func TestAlignUp(t *testing.T) {
	aligned, ok := memutils.AlignUp(uint64(10), 4)
	require.True(t, ok)
	require.Equal(t, uint64(12), aligned)

	aligned, ok = memutils.AlignUp(uint64(12), 4)
	require.True(t, ok)
	require.Equal(t, uint64(12), aligned)

	aligned, ok = memutils.AlignUp(uint64(0), 4)
	require.True(t, ok)
	require.Equal(t, uint64(0), aligned)

	_, ok = memutils.AlignUp(uint64(math.MaxUint64-1), 4)
	require.False(t, ok)
}

func TestAddNoOverflow(t *testing.T) {
	sum, ok := memutils.AddNoOverflow(uint64(3), 4)
	require.True(t, ok)
	require.Equal(t, uint64(7), sum)

	_, ok = memutils.AddNoOverflow(uint64(math.MaxUint64), 1)
	require.False(t, ok)

	_, ok = memutils.AddNoOverflow(^uintptr(0)-15, 16)
	require.False(t, ok)
}
