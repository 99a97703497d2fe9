package codec_test

import (
	"testing"

	"github.com/arloliu/bfsdl/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestASCIIAndUTF8AlwaysRegistered(t *testing.T) {
	assert.True(t, codec.IsValidCoding("ASCII"))
	assert.True(t, codec.IsValidCoding("UTF8"))
}

func TestGetCodingIDIsCaseSensitive(t *testing.T) {
	assert.False(t, codec.IsValidCoding("ascii"))
	assert.Equal(t, codec.Invalid, codec.GetCodingID("ascii"))
}

func TestUnknownCodecNameResolvesInvalid(t *testing.T) {
	assert.Equal(t, codec.Invalid, codec.GetCodingID("NOPE"))
	_, err := codec.GetByName("NOPE")
	assert.Error(t, err)
}

func TestASCIIDecodeRune(t *testing.T) {
	c, err := codec.GetByName("ASCII")
	require.NoError(t, err)

	r, size := c.DecodeRune([]byte("A"))
	assert.Equal(t, rune('A'), r)
	assert.Equal(t, 1, size)

	r, size = c.DecodeRune([]byte{0xff})
	assert.Equal(t, codec.InvalidCodePoint, r)
	assert.Equal(t, 1, size)

	r, size = c.DecodeRune(nil)
	assert.Equal(t, 0, size)
	_ = r
}

func TestUTF8DecodeRuneHandlesMultiByteAndPartial(t *testing.T) {
	c, err := codec.GetByName("UTF8")
	require.NoError(t, err)

	full := "é" // 2-byte UTF-8
	r, size := c.DecodeRune([]byte(full))
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, size)

	// first byte only: incomplete, must wait for more data.
	r, size = c.DecodeRune([]byte(full)[:1])
	assert.Equal(t, 0, size)
	_ = r
}

func TestLegacyCodepageRegistered(t *testing.T) {
	assert.True(t, codec.IsValidCoding("ISO-8859-1"))
	assert.True(t, codec.IsValidCoding("Windows-1252"))

	c, err := codec.GetByName("ISO-8859-1")
	require.NoError(t, err)
	r, size := c.DecodeRune([]byte{0xe9}) // é in Latin-1
	assert.Equal(t, 'é', r)
	assert.Equal(t, 1, size)
}
