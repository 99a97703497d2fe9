package field

import (
	"fmt"
	"strings"

	"github.com/arloliu/bfsdl/codec"
	"github.com/arloliu/bfsdl/errs"
)

// LengthMode selects how a string field's length is determined.
type LengthMode int

const (
	// LengthUnknown is the builder's initial state, before any attribute
	// or identifier preset has chosen a mode.
	LengthUnknown LengthMode = iota
	// LengthBounded means the string runs until its terminator code point
	// (the default mode, chosen by Finalize when nothing else set one).
	LengthBounded
	// LengthFixed means the string occupies exactly LengthBits bits.
	LengthFixed
	// LengthPrefixed means a LengthBits-bit unsigned integer immediately
	// precedes the string, giving its length.
	LengthPrefixed
)

// StringField is a parsed string field descriptor.
type StringField struct {
	Name              string
	LengthMode        LengthMode
	LengthBits        int
	Terminator        rune
	AllowUnterminated bool
	CodecID           int
}

// TypeString renders the field's declared type deterministically from its
// fields: "string:" plus a length tag ("b" bounded, "f<bits>" fixed,
// "p<bits>" prefixed), ":t<term>" when a terminator is set, ":tu" when
// unterminated strings are allowed, then ";<codec tag>".
func (f StringField) TypeString() string {
	var sb strings.Builder

	sb.WriteString("string:")
	switch f.LengthMode {
	case LengthFixed:
		fmt.Fprintf(&sb, "f%d", f.LengthBits)
	case LengthPrefixed:
		fmt.Fprintf(&sb, "p%d", f.LengthBits)
	default:
		sb.WriteByte('b')
	}

	if f.Terminator != noTerminator {
		fmt.Fprintf(&sb, ":t%d", f.Terminator)
	}
	if f.AllowUnterminated {
		sb.WriteString(":tu")
	}

	sb.WriteByte(';')
	sb.WriteString(codec.TypeStr(codec.ID(f.CodecID)))

	return sb.String()
}

// AttributeResult reports how a single (name, value) attribute fared.
type AttributeResult int

const (
	AttrSuccess AttributeResult = iota
	AttrUnknown
	AttrUnsupported
	AttrRedefinition
	AttrInvalidArgument
)

const noCodecID = -1
const noTerminator rune = -1

// maxStringLengthBits bounds a fixed-width string field's declared length.
const maxStringLengthBits = 1 << 24

// StringFieldBuilder incrementally parses a string field identifier
// (string/cstring/pstring) and its attributes.
type StringFieldBuilder struct {
	identParsed bool
	complete    bool
	hasError    bool

	lengthMode        LengthMode
	lengthBits        int
	terminator        rune
	termSet           bool
	allowUnterminated bool
	untermSet         bool
	codecID           int
	codecSet          bool

	defaultCodecID  int
	defaultTermChar rune
}

// NewStringFieldBuilder returns a builder whose Finalize defaults resolve
// from defaultCodecID and defaultTermChar (the tree's DefaultStringCode
// and DefaultStringTerm).
func NewStringFieldBuilder(defaultCodecID int, defaultTermChar rune) *StringFieldBuilder {
	b := &StringFieldBuilder{}
	b.SetDefaultCoding(defaultCodecID)
	b.SetDefaultTermChar(defaultTermChar)
	b.Reset()

	return b
}

// Reset clears all parse state so the builder can be reused.
func (b *StringFieldBuilder) Reset() {
	b.identParsed = false
	b.complete = false
	b.hasError = false
	b.lengthMode = LengthUnknown
	b.lengthBits = 0
	b.terminator = noTerminator
	b.termSet = false
	b.allowUnterminated = false
	b.untermSet = false
	b.codecID = noCodecID
	b.codecSet = false
}

// SetDefaultCoding sets the codec ID Finalize falls back to when no `code`
// attribute was given.
func (b *StringFieldBuilder) SetDefaultCoding(codecID int) { b.defaultCodecID = codecID }

// SetDefaultTermChar sets the terminator Finalize falls back to when no
// `term` attribute was given.
func (b *StringFieldBuilder) SetDefaultTermChar(term rune) { b.defaultTermChar = term }

// ParseIdentifier accepts exactly "string", or "cstring"/"pstring": the
// former presets term=0 (Bounded), the latter presets an 8-bit prefixed
// length and allow_unterminated=true.
func (b *StringFieldBuilder) ParseIdentifier(text string) error {
	if b.identParsed {
		return errs.ErrIdentifierAlreadyParsed
	}

	const suffix = "string"
	if text == suffix {
		b.identParsed = true

		return nil
	}

	if len(text) != len(suffix)+1 || text[1:] != suffix {
		return errs.ErrInvalidIdentifier
	}

	switch text[0] {
	case 'c':
		if res := b.SetTermAttr(0); res != AttrSuccess {
			return errs.ErrInvalidAttributeArgument
		}
	case 'p':
		if res := b.SetPlenAttr(8); res != AttrSuccess {
			return errs.ErrInvalidAttributeArgument
		}
		if res := b.SetUntermAttr(); res != AttrSuccess {
			return errs.ErrInvalidAttributeArgument
		}
	default:
		return errs.ErrInvalidIdentifier
	}

	b.identParsed = true

	return nil
}

// ParseNumericAttribute applies an attribute whose value arrived as a
// numeric literal: term, plen, or len. A recognized string-valued
// attribute name yields AttrUnsupported; an unrecognized name yields
// AttrUnknown.
func (b *StringFieldBuilder) ParseNumericAttribute(name string, value uint64) AttributeResult {
	switch name {
	case "term":
		if value > 0x10FFFF {
			return fail(&b.hasError, AttrInvalidArgument)
		}

		return b.SetTermAttr(rune(value))
	case "plen":
		if value == 0 || value > 64 {
			return fail(&b.hasError, AttrInvalidArgument)
		}

		return b.SetPlenAttr(int(value))
	case "len":
		if value == 0 || value > maxStringLengthBits {
			return fail(&b.hasError, AttrInvalidArgument)
		}

		return b.SetLenAttr(int(value))
	case "code", "unterm":
		return fail(&b.hasError, AttrUnsupported)
	default:
		return fail(&b.hasError, AttrUnknown)
	}
}

// ParseStringAttribute applies an attribute whose value arrived as a
// string literal: code, or the unterm flag (whose value must be empty). A
// recognized numeric-valued attribute name yields AttrUnsupported; an
// unrecognized name yields AttrUnknown.
func (b *StringFieldBuilder) ParseStringAttribute(name, value string) AttributeResult {
	switch name {
	case "code":
		id := codec.GetCodingID(value)
		if id == codec.Invalid {
			return fail(&b.hasError, AttrInvalidArgument)
		}

		return b.SetCodeAttr(int(id))
	case "unterm":
		if value != "" {
			return fail(&b.hasError, AttrInvalidArgument)
		}

		return b.SetUntermAttr()
	case "term", "plen", "len":
		return fail(&b.hasError, AttrUnsupported)
	default:
		return fail(&b.hasError, AttrUnknown)
	}
}

// SetCodeAttr applies the `code` attribute: value is a codec's canonical
// name, already resolved by the caller to codecID.
func (b *StringFieldBuilder) SetCodeAttr(codecID int) AttributeResult {
	if b.codecSet {
		return fail(&b.hasError, AttrRedefinition)
	}
	if codecID < 0 {
		return fail(&b.hasError, AttrInvalidArgument)
	}

	b.codecID = codecID
	b.codecSet = true

	return AttrSuccess
}

// SetTermAttr applies the `term` attribute: a terminator code point; also
// sets LengthMode to Bounded.
func (b *StringFieldBuilder) SetTermAttr(cp rune) AttributeResult {
	if b.lengthMode != LengthUnknown {
		return fail(&b.hasError, AttrRedefinition)
	}
	if b.termSet {
		return fail(&b.hasError, AttrRedefinition)
	}

	b.terminator = cp
	b.termSet = true
	b.lengthMode = LengthBounded

	return AttrSuccess
}

// SetUntermAttr applies the `unterm` flag attribute.
func (b *StringFieldBuilder) SetUntermAttr() AttributeResult {
	if b.untermSet {
		return fail(&b.hasError, AttrRedefinition)
	}

	b.allowUnterminated = true
	b.untermSet = true

	return AttrSuccess
}

// SetPlenAttr applies the `plen` attribute: a prefixed length field of the
// given bit width.
func (b *StringFieldBuilder) SetPlenAttr(bits int) AttributeResult {
	if b.lengthMode != LengthUnknown {
		return fail(&b.hasError, AttrRedefinition)
	}

	b.lengthMode = LengthPrefixed
	b.lengthBits = bits

	return AttrSuccess
}

// SetLenAttr applies the `len` attribute: a fixed-width string of the
// given bit width.
func (b *StringFieldBuilder) SetLenAttr(bits int) AttributeResult {
	if b.lengthMode != LengthUnknown {
		return fail(&b.hasError, AttrRedefinition)
	}

	b.lengthMode = LengthFixed
	b.lengthBits = bits

	return AttrSuccess
}

// Finalize fills in defaults for any attribute that was never set. Must
// run after ParseIdentifier and before GetField.
func (b *StringFieldBuilder) Finalize() error {
	if !b.identParsed {
		return errs.ErrIdentifierNotParsed
	}
	if b.hasError {
		return errs.ErrAttributeConflict
	}

	if b.lengthMode == LengthUnknown {
		b.lengthMode = LengthBounded
	}
	if !b.termSet {
		b.terminator = b.defaultTermChar
	}
	if !b.untermSet {
		b.allowUnterminated = false
	}
	if !b.codecSet {
		b.codecID = b.defaultCodecID
	}

	b.complete = true

	return nil
}

// GetField returns the finished descriptor, or an error if Finalize has
// not succeeded.
func (b *StringFieldBuilder) GetField(name string) (StringField, error) {
	if !b.complete {
		return StringField{}, errs.ErrBuilderNotComplete
	}

	return StringField{
		Name:              name,
		LengthMode:        b.lengthMode,
		LengthBits:        b.lengthBits,
		Terminator:        b.terminator,
		AllowUnterminated: b.allowUnterminated,
		CodecID:           b.codecID,
	}, nil
}

func fail(hasError *bool, result AttributeResult) AttributeResult {
	*hasError = true

	return result
}
