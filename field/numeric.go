// Package field implements the numeric and string field builders: small
// incremental parsers that turn a field identifier plus attributes into a
// typed field descriptor.
package field

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/arloliu/bfsdl/errs"
)

// MaxNumericFieldBits bounds a numeric field's total width (integer bits
// plus fractional bits): generous enough for any realistic binary-format
// field, tight enough to reject bit-base multiplication overflow early.
const MaxNumericFieldBits = 65536

// BitBase is the multiplier applied to a numeric field's width digits.
type BitBase int

const (
	// Bit counts width digits as bits (multiplier 1).
	Bit BitBase = 1
	// Byte counts width digits as bytes (multiplier 8).
	Byte BitBase = 8
)

// NumericField is a parsed numeric field descriptor: a sign plus integer
// and fractional bit widths.
type NumericField struct {
	Name         string
	Signed       bool
	IntegerBits  int
	FractionBits int
}

// TypeString renders the field's declared type: "(s|u)<int_bits>", with
// ".<frac_bits>" appended when there is a fractional part.
func (f NumericField) TypeString() string {
	sign := "u"
	if f.Signed {
		sign = "s"
	}
	if f.FractionBits == 0 {
		return fmt.Sprintf("%s%d", sign, f.IntegerBits)
	}

	return fmt.Sprintf("%s%d.%d", sign, f.IntegerBits, f.FractionBits)
}

// NumericFieldBuilder incrementally parses a numeric field identifier
// (e.g. "u8", "s16") and suffix (e.g. "8" in "s16.8") under a bit-base
// policy set before parsing begins.
type NumericFieldBuilder struct {
	bitBase      BitBase
	identParsed  bool
	complete     bool
	isSigned     bool
	integerBits  int
	fractionBits int
}

// NewNumericFieldBuilder returns a builder counting width digits under
// bitBase.
func NewNumericFieldBuilder(bitBase BitBase) *NumericFieldBuilder {
	return &NumericFieldBuilder{bitBase: bitBase}
}

// Reset clears identifier/suffix state so the builder can be reused.
func (b *NumericFieldBuilder) Reset() {
	b.identParsed = false
	b.complete = false
}

// SetBitBase changes the multiplier applied to subsequently parsed width
// digits.
func (b *NumericFieldBuilder) SetBitBase(bitBase BitBase) {
	b.bitBase = bitBase
}

// ParseIdentifier parses the leading "[us]\d+" identifier: the first
// character selects signedness, the remaining decimal digits (times
// bitBase) give the integer bit width.
func (b *NumericFieldBuilder) ParseIdentifier(text string) error {
	if b.identParsed {
		return errs.ErrIdentifierAlreadyParsed
	}
	if len(text) < 2 {
		return errs.ErrInvalidIdentifier
	}

	signed, err := parseSign(text[0])
	if err != nil {
		return err
	}

	intBits, err := b.calcBits(text[1:])
	if err != nil {
		return err
	}

	if signed && intBits == 0 {
		return errs.ErrInvalidIdentifier
	}

	b.isSigned = signed
	b.integerBits = intBits
	b.identParsed = true

	return nil
}

// ParseSuffix parses the optional fractional-width suffix: empty means no
// fractional part, otherwise a decimal digit string (times bitBase).
func (b *NumericFieldBuilder) ParseSuffix(text string) error {
	if !b.identParsed {
		return errs.ErrIdentifierNotParsed
	}

	fractionBits := 0
	if text != "" {
		var err error
		fractionBits, err = b.calcBits(text)
		if err != nil {
			return err
		}
	}

	b.fractionBits = fractionBits
	total := b.integerBits + b.fractionBits
	if total < 1 || total > MaxNumericFieldBits {
		return errs.ErrBitWidthOverflow
	}

	b.complete = true

	return nil
}

// GetField returns the finished descriptor, or an error if ParseIdentifier
// and ParseSuffix have not both succeeded.
func (b *NumericFieldBuilder) GetField(name string) (NumericField, error) {
	if !b.complete {
		return NumericField{}, errs.ErrBuilderNotComplete
	}

	return NumericField{
		Name:         name,
		Signed:       b.isSigned,
		IntegerBits:  b.integerBits,
		FractionBits: b.fractionBits,
	}, nil
}

func (b *NumericFieldBuilder) calcBits(digits string) (int, error) {
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, errs.ErrInvalidIdentifier
		}
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, errs.ErrBitWidthOverflow
	}

	hi, v := bits.Mul64(n, uint64(b.bitBase))
	if hi != 0 || v > MaxNumericFieldBits {
		return 0, errs.ErrBitWidthOverflow
	}

	return int(v), nil
}

func parseSign(c byte) (bool, error) {
	switch c {
	case 'u':
		return false, nil
	case 's':
		return true, nil
	default:
		return false, errs.ErrInvalidIdentifier
	}
}
