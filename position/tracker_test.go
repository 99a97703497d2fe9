package position_test

import (
	"testing"

	"github.com/arloliu/bfsdl/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackerStartsAtLineOne(t *testing.T) {
	tr, err := position.New("test.bfsdl", 16, 16)
	require.NoError(t, err)
	assert.Equal(t, 1, tr.CurrentLine())
	assert.Equal(t, uint64(1), tr.CurrentColumn())
	assert.Equal(t, "test.bfsdl", tr.Name())
}

func TestProcessNewDataTracksColumn(t *testing.T) {
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte("abc"))
	assert.Equal(t, uint64(4), tr.CurrentColumn())
	assert.Equal(t, 1, tr.CurrentLine())
	assert.Equal(t, "abc", tr.PrintableContext())
}

func TestNewlineAdoptsFirstSeenAndAdvancesLine(t *testing.T) {
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte("ab\ncd"))
	assert.Equal(t, 2, tr.CurrentLine())
	assert.Equal(t, "cd", tr.PrintableContext())
	assert.Equal(t, uint64(3), tr.CurrentColumn())
}

func TestCRLFAdvancesOneLineUnderFirstSeenRule(t *testing.T) {
	// \r is adopted as the canonical newline; the following \n is a
	// different byte so it does not match and gets pushed into the window.
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte("a\r\nb"))
	assert.Equal(t, 2, tr.CurrentLine())
	assert.Equal(t, "\\x0ab", tr.PrintableContext())
}

func TestContextBeginColumnNonZeroWhenTruncated(t *testing.T) {
	tr, err := position.New("t", 4, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte("abcdef")) // window cap 4: keeps "cdef"
	assert.NotZero(t, tr.ContextBeginColumn())
	assert.Equal(t, "cdef", tr.PrintableContext())
	assert.Equal(t, 4, tr.ContextPositionOffset())
}

func TestPrintableContextEscapesNonAscii(t *testing.T) {
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte{0x41, 0x01, 0x7f})
	assert.Equal(t, "A\\x01\\x7f", tr.PrintableContext())
}

func TestProcessRemainderStopsAtNewline(t *testing.T) {
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte("ab"))
	tr.ProcessRemainder([]byte("X\nmore"))
	assert.Equal(t, "abX", tr.PrintableContext())
}

func TestProcessNewDataClearsStaleRemainder(t *testing.T) {
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessRemainder([]byte("stale"))
	tr.ProcessNewData([]byte("a"))
	assert.Equal(t, "a", tr.PrintableContext())
}

func TestResetRestoresInitialState(t *testing.T) {
	tr, err := position.New("t", 16, 16)
	require.NoError(t, err)

	tr.ProcessNewData([]byte("ab\ncd"))
	tr.Reset()
	assert.Equal(t, 1, tr.CurrentLine())
	assert.Equal(t, uint64(1), tr.CurrentColumn())
	assert.Equal(t, "", tr.PrintableContext())
}

func TestNewRejectsBadPretextCapacity(t *testing.T) {
	_, err := position.New("t", 0, 16)
	assert.Error(t, err)
}
