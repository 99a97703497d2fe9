package interp

import (
	"fmt"
	"math"

	"github.com/arloliu/bfsdl/codec"
	"github.com/arloliu/bfsdl/endian"
	"github.com/arloliu/bfsdl/token"
)

// paramErrCode classifies how applying a header parameter failed.
type paramErrCode int

const (
	paramErrNone paramErrCode = iota
	paramErrTypeNum
	paramErrTypeStr
	paramErrInvalid
	paramErrUnsupported
	paramErrRuntime
	paramErrRedefinition
	paramErrUnknown
)

// applyParameter validates and stores the current input against the
// identifier recorded by headerIdentifierEvaluate.
func (it *Interpreter) applyParameter() paramErrCode {
	switch it.identifier {
	case "Version":
		return it.applyVersion()
	case "BitBase":
		return it.applyBitBase()
	case "DefaultByteOrder":
		return it.applyEndianParam("DefaultByteOrder")
	case "DefaultBitOrder":
		return it.applyEndianParam("DefaultBitOrder")
	case "DefaultFloatFormat":
		if it.input.Kind != token.KindStringLiteral {
			return paramErrTypeStr
		}

		return paramErrUnsupported
	case "DefaultStringCode":
		return it.applyDefaultStringCode()
	case "DefaultStringTerm":
		return it.applyDefaultStringTerm()
	case "CustomExtension":
		if it.input.Kind != token.KindStringLiteral {
			return paramErrTypeStr
		}

		return paramErrUnsupported
	default:
		return paramErrUnknown
	}
}

func (it *Interpreter) applyVersion() paramErrCode {
	if it.input.Kind != token.KindNumericLiteral {
		return paramErrTypeNum
	}
	if it.tree.FindProperty("Version") != nil {
		return paramErrRedefinition
	}

	v, err := it.input.Numeric.AsUint64()
	if err != nil || v > math.MaxUint32 {
		return paramErrInvalid
	}

	if it.setNumericProperty("Version", v) != nil {
		return paramErrRuntime
	}

	return paramErrNone
}

func (it *Interpreter) applyBitBase() paramErrCode {
	if it.input.Kind != token.KindStringLiteral {
		return paramErrTypeStr
	}
	if it.tree.FindProperty("BitBase") != nil {
		return paramErrRedefinition
	}

	var v uint64
	switch it.input.Text {
	case "Bit":
		v = bitBaseBit
	case "Byte":
		v = bitBaseByte
	default:
		return paramErrInvalid
	}

	if it.setNumericProperty("BitBase", v) != nil {
		return paramErrRuntime
	}

	return paramErrNone
}

func (it *Interpreter) applyEndianParam(name string) paramErrCode {
	if it.input.Kind != token.KindStringLiteral {
		return paramErrTypeStr
	}
	if it.tree.FindProperty(name) != nil {
		return paramErrRedefinition
	}

	code, ok := endian.CodeForName(it.input.Text)
	if !ok {
		return paramErrInvalid
	}

	if it.setNumericProperty(name, uint64(code)) != nil {
		return paramErrRuntime
	}

	return paramErrNone
}

func (it *Interpreter) applyDefaultStringCode() paramErrCode {
	if it.input.Kind != token.KindStringLiteral {
		return paramErrTypeStr
	}
	if it.tree.FindProperty("DefaultStringCode") != nil {
		return paramErrRedefinition
	}
	if !codec.IsValidCoding(it.input.Text) {
		return paramErrInvalid
	}

	if it.setStringProperty("DefaultStringCode", it.input.Text) != nil {
		return paramErrRuntime
	}

	return paramErrNone
}

func (it *Interpreter) applyDefaultStringTerm() paramErrCode {
	if it.input.Kind != token.KindNumericLiteral {
		return paramErrTypeNum
	}
	if it.tree.FindProperty("DefaultStringTerm") != nil {
		return paramErrRedefinition
	}

	cp, err := it.input.Numeric.AsRune()
	if err != nil {
		return paramErrUnsupported
	}

	if it.setNumericProperty("DefaultStringTerm", uint64(cp)) != nil {
		return paramErrRuntime
	}

	return paramErrNone
}

// logErrorForParameter renders the diagnostic message for each result
// code and reports it.
func (it *Interpreter) logErrorForParameter(code paramErrCode) {
	switch code {
	case paramErrTypeNum:
		it.logError(fmt.Sprintf("%s requires a Numeric Literal parameter, found", it.identifier))
	case paramErrTypeStr:
		it.logError(fmt.Sprintf("%s requires a String Literal parameter, found", it.identifier))
	case paramErrInvalid:
		it.logError(fmt.Sprintf("Invalid value for %s:", it.identifier))
	case paramErrUnsupported:
		it.logError(fmt.Sprintf("Unsupported value for %s:", it.identifier))
	case paramErrRuntime:
		it.logError(fmt.Sprintf("Failed to set %s to parameter", it.identifier))
	case paramErrRedefinition:
		it.logError(fmt.Sprintf("Redefinition of %s to parameter", it.identifier))
	default:
		it.logError(fmt.Sprintf("Unknown config '%s' with parameter", it.identifier))
	}
}
