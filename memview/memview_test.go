//go:build cgo || unix

package memview_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/membridge/bridge"
	"github.com/vkngwrapper/membridge/memview"
)

// zeroedBlock allocates a zero-filled block of size bytes, deallocated when the test ends
func zeroedBlock(t *testing.T, size int) bridge.Handle {
	handle := bridge.Allocate(uint64(size))
	require.NotEqual(t, bridge.NullHandle, handle)
	t.Cleanup(func() { bridge.Deallocate(handle) })

	memview.Fill(handle, size, 0)
	return handle
}

func TestBytesAliasesBlock(t *testing.T) {
	handle := zeroedBlock(t, 16)

	view := memview.Bytes(handle, 16)
	require.Len(t, view, 16)

	view[3] = 0x42
	require.Equal(t, byte(0x42), memview.Bytes(handle, 16)[3])

	out := make([]byte, 4)
	memview.Read(handle, out)
	require.Equal(t, []byte{0, 0, 0, 0x42}, out)
}

func TestBytesEmpty(t *testing.T) {
	handle := zeroedBlock(t, 4)

	require.Nil(t, memview.Bytes(bridge.NullHandle, 16))
	require.Nil(t, memview.Bytes(handle, 0))
	require.Nil(t, memview.Bytes(handle, -1))
}

func TestWriteRead(t *testing.T) {
	handle := zeroedBlock(t, 8)

	require.Equal(t, 4, memview.Write(handle, []byte{1, 2, 3, 4}))
	require.Equal(t, 3, memview.WriteAt(handle, 5, []byte{6, 7, 8}))

	out := make([]byte, 8)
	require.Equal(t, 8, memview.Read(handle, out))
	require.Equal(t, []byte{1, 2, 3, 4, 0, 6, 7, 8}, out)

	require.Equal(t, 0, memview.WriteAt(handle, -1, []byte{9}))
	require.Equal(t, 0, memview.Write(bridge.NullHandle, []byte{9}))
	require.Equal(t, []byte{1, 2, 3, 4, 0, 6, 7, 8}, memview.Bytes(handle, 8))
}

func TestFill(t *testing.T) {
	handle := zeroedBlock(t, 8)

	memview.Fill(handle, 6, 0xEE)
	require.Equal(t, []byte{0xEE, 0xEE, 0xEE, 0xEE, 0xEE, 0xEE, 0, 0}, memview.Bytes(handle, 8))
}
