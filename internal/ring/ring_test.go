package ring_test

import (
	"testing"

	"github.com/arloliu/bfsdl/internal/ring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	_, err := ring.New(0)
	assert.Error(t, err)
	_, err = ring.New(-1)
	assert.Error(t, err)
}

func TestPushZeroBytesLeavesCountersUnchanged(t *testing.T) {
	w, err := ring.New(4)
	require.NoError(t, err)

	w.Push(nil)
	assert.Equal(t, 0, w.Size())
	assert.Equal(t, uint64(0), w.BeginCounter())
	assert.Equal(t, uint64(0), w.EndCounter())
}

func TestPushExactCapacityIntoEmptyWindow(t *testing.T) {
	w, err := ring.New(4)
	require.NoError(t, err)

	w.Push([]byte{1, 2, 3, 4})
	assert.Equal(t, uint64(0), w.BeginCounter())
	assert.Equal(t, uint64(4), w.EndCounter())
	assert.Equal(t, 4, w.Size())
}

func TestPushUnderCapacityExtendsTail(t *testing.T) {
	w, err := ring.New(8)
	require.NoError(t, err)

	w.Push([]byte("ab"))
	w.Push([]byte("cd"))
	assert.Equal(t, 4, w.Size())
	for i, want := range []byte("abcd") {
		assert.Equal(t, want, w.Get(i))
	}
}

func TestPushOverCapacitySlidesWindow(t *testing.T) {
	w, err := ring.New(4)
	require.NoError(t, err)

	w.Push([]byte("abcdef")) // 6 bytes into a 4-byte window -> keep "cdef"[-4:] = "cdef"
	assert.Equal(t, 4, w.Size())
	want := []byte("cdef")
	for i := range want {
		assert.Equal(t, want[i], w.Get(i))
	}
}

func TestWindowContentLawAcrossMultiplePushes(t *testing.T) {
	w, err := ring.New(5)
	require.NoError(t, err)

	var all []byte
	for _, chunk := range [][]byte{[]byte("a"), []byte("bc"), []byte("defg"), []byte("hi")} {
		w.Push(chunk)
		all = append(all, chunk...)

		size := w.Size()
		want := all[len(all)-size:]
		for i := 0; i < size; i++ {
			assert.Equal(t, want[i], w.Get(i), "chunk=%q idx=%d", chunk, i)
		}
		assert.LessOrEqual(t, size, w.Capacity())
		assert.Equal(t, uint64(size), w.EndCounter()-w.BeginCounter())
	}
}

func TestGetOutOfRangeReturnsZero(t *testing.T) {
	w, err := ring.New(2)
	require.NoError(t, err)
	w.Push([]byte{9})
	assert.Equal(t, byte(0), w.Get(5))
	assert.Equal(t, byte(0), w.Get(-1))
}

func TestResetClearsWindow(t *testing.T) {
	w, err := ring.New(4)
	require.NoError(t, err)
	w.Push([]byte("abcd"))
	w.Reset()
	assert.Equal(t, 0, w.Size())
	assert.Equal(t, uint64(0), w.BeginCounter())
	assert.Equal(t, uint64(0), w.EndCounter())
}
