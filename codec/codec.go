// Package codec identifies and resolves the byte-to-code-point converters
// the symbolizer decodes its input with.
//
// The parser core only needs "a codec identified by an ID, addressable by
// canonical name"; the conversion tables themselves live behind that seam.
// ASCII and UTF-8 are implemented directly, and the legacy single-byte
// codepages are backed by golang.org/x/text/encoding/charmap.
package codec

import (
	"unicode/utf8"

	"github.com/arloliu/bfsdl/errs"
	"golang.org/x/text/encoding/charmap"
)

// InvalidCodePoint is the sentinel returned for a code point that is absent
// or could not be decoded.
const InvalidCodePoint rune = -1

// ID is an opaque, memory-efficient identifier for a registered codec.
type ID int

// Invalid is the sentinel ID returned when a name does not resolve.
const Invalid ID = -1

// Codec decodes bytes into Unicode code points.
type Codec interface {
	// ID returns the codec's registered ID.
	ID() ID
	// Name returns the codec's canonical name.
	Name() string
	// DecodeRune decodes the first code point from data.
	//
	// size == 0 means data holds an incomplete encoding at its tail; the
	// caller should stop and retry after a refill. size > 0 always
	// consumes that many bytes, even when cp is InvalidCodePoint (an
	// invalid encoding is still "consumed" so the pipeline can report a
	// diagnostic and move on rather than looping forever).
	DecodeRune(data []byte) (cp rune, size int)
}

type registryEntry struct {
	id    ID
	codec Codec
}

var registry []registryEntry
var byName = map[string]ID{}

func register(c Codec) {
	registry = append(registry, registryEntry{id: c.ID(), codec: c})
	byName[c.Name()] = c.ID()
}

// GetCodingID resolves a canonical codec name to its ID, case-sensitively.
// Returns Invalid if the name is not registered.
func GetCodingID(name string) ID {
	if id, ok := byName[name]; ok {
		return id
	}

	return Invalid
}

// IsValidCoding reports whether name resolves to a registered codec.
func IsValidCoding(name string) bool {
	return GetCodingID(name) != Invalid
}

// TypeStr returns the short lowercase tag a codec contributes to a field's
// declared type string, or "?" for an unregistered id.
func TypeStr(id ID) string {
	if s, ok := typeStrs[id]; ok {
		return s
	}

	return "?"
}

var typeStrs = map[ID]string{
	idASCII:       "ascii",
	idUTF8:        "utf8",
	idISO8859_1:   "iso8859-1",
	idWindows1252: "ms1252",
	idIBM437:      "ms437",
}

// Get returns the Codec for id, or nil if id is not registered.
func Get(id ID) Codec {
	for _, e := range registry {
		if e.id == id {
			return e.codec
		}
	}

	return nil
}

// GetByName resolves name directly to a Codec, or returns an error wrapping
// errs.ErrUnknownCodec.
func GetByName(name string) (Codec, error) {
	id := GetCodingID(name)
	if id == Invalid {
		return nil, errs.ErrUnknownCodec
	}

	return Get(id), nil
}

const (
	idASCII ID = iota
	idUTF8
	idISO8859_1
	idWindows1252
	idIBM437
)

func init() {
	register(asciiCodec{})
	register(utf8Codec{})
	register(singleByteCodec{id: idISO8859_1, name: "ISO-8859-1", table: charmap.ISO8859_1})
	register(singleByteCodec{id: idWindows1252, name: "Windows-1252", table: charmap.Windows1252})
	register(singleByteCodec{id: idIBM437, name: "IBM437", table: charmap.CodePage437})
}

// asciiCodec decodes 7-bit ASCII; bytes with the high bit set are invalid.
type asciiCodec struct{}

func (asciiCodec) ID() ID { return idASCII }
func (asciiCodec) Name() string { return "ASCII" }

func (asciiCodec) DecodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}
	if data[0] <= 0x7f {
		return rune(data[0]), 1
	}

	return InvalidCodePoint, 1
}

// utf8Codec decodes standard UTF-8.
type utf8Codec struct{}

func (utf8Codec) ID() ID { return idUTF8 }
func (utf8Codec) Name() string { return "UTF8" }

func (utf8Codec) DecodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		if !utf8.FullRune(data) {
			// Possibly just a truncated chunk; ask for more bytes unless
			// we already hold a maximal-length encoding (then it's just
			// invalid).
			if len(data) < utf8.UTFMax {
				return 0, 0
			}
		}

		return InvalidCodePoint, 1
	}

	return r, size
}

// singleByteCodec adapts an x/text/encoding/charmap table to Codec.
type singleByteCodec struct {
	id    ID
	name  string
	table *charmap.Charmap
}

func (c singleByteCodec) ID() ID { return c.id }
func (c singleByteCodec) Name() string { return c.name }

func (c singleByteCodec) DecodeRune(data []byte) (rune, int) {
	if len(data) == 0 {
		return 0, 0
	}

	r := c.table.DecodeByte(data[0])
	if r == utf8.RuneError {
		return InvalidCodePoint, 1
	}

	return r, 1
}
