// Package errs centralizes the sentinel errors shared across the parser's
// components, so callers can classify a failure with errors.Is instead of
// string matching.
package errs

import "errors"

// Structural / state errors.
var (
	// ErrAlreadyInitialized names a component that may only be initialized
	// once being initialized again. No function in this module returns it.
	ErrAlreadyInitialized = errors.New("bfsdl: already initialized")
	// ErrNotInitialized names a component used before initialization. No
	// function in this module returns it.
	ErrNotInitialized = errors.New("bfsdl: not initialized")
	// ErrInvalidCapacity is returned when a non-positive capacity is given
	// to a fixed-capacity structure.
	ErrInvalidCapacity = errors.New("bfsdl: invalid capacity")
)

// Category / codec errors (symbol, codec packages).
var (
	// ErrUnknownCodePoint names a decoded code point that belongs to no
	// registered symbol category. No function in this module returns it;
	// the tokenizer reports that case as text through its diagnostic sink.
	ErrUnknownCodePoint = errors.New("bfsdl: unmapped code point")
	// ErrUnknownCodec is returned when a codec name does not resolve to a
	// known codec ID.
	ErrUnknownCodec = errors.New("bfsdl: unknown codec")
	// ErrInvalidCodePoint names a code point outside the valid Unicode
	// range. No function in this module returns it.
	ErrInvalidCodePoint = errors.New("bfsdl: invalid code point")
)

// State machine errors (fsm package).
var (
	// ErrInvalidState is returned when a transition targets an unknown
	// state id.
	ErrInvalidState = errors.New("bfsdl: invalid state id")
	// ErrNoCurrentState is returned when Evaluate is called before the
	// first transition has committed.
	ErrNoCurrentState = errors.New("bfsdl: no current state")
)

// Field builder errors (field package).
var (
	// ErrIdentifierAlreadyParsed is returned when ParseIdentifier is
	// called twice on the same builder.
	ErrIdentifierAlreadyParsed = errors.New("bfsdl: identifier already parsed")
	// ErrIdentifierNotParsed is returned when a suffix or attribute is
	// parsed before the identifier.
	ErrIdentifierNotParsed = errors.New("bfsdl: identifier not yet parsed")
	// ErrInvalidIdentifier is returned when an identifier does not match
	// the expected grammar for the builder.
	ErrInvalidIdentifier = errors.New("bfsdl: invalid identifier")
	// ErrBitWidthOverflow is returned when a computed bit width exceeds
	// the builder's maximum.
	ErrBitWidthOverflow = errors.New("bfsdl: bit width exceeds maximum")
	// ErrBuilderNotComplete is returned when GetField is called on a
	// builder that has not finished parsing.
	ErrBuilderNotComplete = errors.New("bfsdl: builder is not complete")
	// ErrAttributeRedefinition names a string field attribute that is set
	// again after already being set. No function in this module returns
	// it; the string field builder reports that case as AttrRedefinition.
	ErrAttributeRedefinition = errors.New("bfsdl: attribute redefinition")
	// ErrAttributeConflict is returned when an attribute conflicts with
	// one already applied (e.g. term after plen).
	ErrAttributeConflict = errors.New("bfsdl: attribute conflicts with prior setting")
	// ErrUnknownAttribute names an attribute the builder does not
	// recognize. No function in this module returns it; the string field
	// builder reports that case as AttrUnknown.
	ErrUnknownAttribute = errors.New("bfsdl: unknown attribute")
	// ErrUnsupportedAttribute names a recognized but disallowed attribute
	// value. No function in this module returns it; the string field
	// builder reports that case as AttrUnsupported.
	ErrUnsupportedAttribute = errors.New("bfsdl: unsupported attribute")
	// ErrInvalidAttributeArgument is returned when an attribute value
	// fails validation.
	ErrInvalidAttributeArgument = errors.New("bfsdl: invalid attribute argument")
)

// Token errors (token package).
var (
	// ErrNumericLiteralSyntax names a numeric literal that violates its
	// grammar (bad base tag, digit out of range for the chosen base, a
	// second sign or period, or no digits at all). No function in this
	// module returns it; the tokenizer reports that case as text through
	// its diagnostic sink.
	ErrNumericLiteralSyntax = errors.New("bfsdl: invalid numeric literal")
	// ErrNumericLiteralSigned is returned by an unsigned conversion when the
	// literal carries a '-' sign.
	ErrNumericLiteralSigned = errors.New("bfsdl: numeric literal is negative")
	// ErrNumericLiteralOverflow is returned when a literal's digits do not
	// fit the requested integer width.
	ErrNumericLiteralOverflow = errors.New("bfsdl: numeric literal overflows target width")
	// ErrNumericLiteralHasFraction is returned by an integer-only conversion
	// when the literal carries a fractional part.
	ErrNumericLiteralHasFraction = errors.New("bfsdl: numeric literal has a fractional part")
	// ErrUnexpectedSymbol names a category the tokenizer's MainSequence
	// state has no rule for. No function in this module returns it; the
	// tokenizer reports that case as text through its diagnostic sink.
	ErrUnexpectedSymbol = errors.New("bfsdl: unexpected symbol")
	// ErrUnterminatedStringLiteral names input that ends while a quoted
	// string literal is still open. No function in this module returns
	// it; the tokenizer reports that case as text through its diagnostic
	// sink.
	ErrUnterminatedStringLiteral = errors.New("bfsdl: unterminated string literal")
)

// Object tree errors (tree package).
var (
	// ErrPropertyExists is returned when adding a property whose name is
	// already present on the tree.
	ErrPropertyExists = errors.New("bfsdl: property already exists")
	// ErrNestedTreeUnsupported is returned by Tree.AddTree when given a
	// nested-tree child; reserved for a future extension.
	ErrNestedTreeUnsupported = errors.New("bfsdl: nested tree children are not supported")
	// ErrPropertyNotFound names a property that does not exist. No
	// function in this module returns it: FindProperty returns nil and
	// GetStringProperty returns "" for a missing name.
	ErrPropertyNotFound = errors.New("bfsdl: property not found")
	// ErrPropertyType is returned when a typed accessor cannot interpret
	// the stored bytes as the requested type.
	ErrPropertyType = errors.New("bfsdl: property value has unexpected type")
)

// Interpreter / grammar errors (interp package). The interpreter reports
// grammar and parameter failures as text through its diagnostic sink; of
// the sentinels below, only ErrParameterRedefinition (from the
// interpreter's property setters) and ErrParseError (from the stream
// driver) are returned by any function.
var (
	// ErrUnexpectedToken names a token that does not match what the
	// current grammar state requires.
	ErrUnexpectedToken = errors.New("bfsdl: unexpected token")
	// ErrUnknownParameter names a header parameter outside the recognized
	// vocabulary.
	ErrUnknownParameter = errors.New("bfsdl: unknown parameter")
	// ErrParameterRedefinition is returned when a header parameter is set
	// a second time.
	ErrParameterRedefinition = errors.New("bfsdl: parameter redefinition")
	// ErrInvalidParameterValue names a header parameter value that fails
	// validation against its fixed vocabulary.
	ErrInvalidParameterValue = errors.New("bfsdl: invalid parameter value")
	// ErrUnsupportedParameterValue names a recognized parameter whose
	// value is a legal but unimplemented choice (e.g. CustomExtension).
	ErrUnsupportedParameterValue = errors.New("bfsdl: unsupported parameter value")
	// ErrBodyUnimplemented names a statement after the header closes, for
	// which no field-declaration grammar exists.
	ErrBodyUnimplemented = errors.New("bfsdl: body parsing unimplemented")
	// ErrHeaderOutOfOrder names BFSDL_HEADER/END_HEADER appearing out of
	// their required sequence.
	ErrHeaderOutOfOrder = errors.New("bfsdl: header stream out of order")
	// ErrParseError is returned by the stream driver (and so by
	// bfsdl.Parse) once the symbolizer, tokenizer or interpreter has
	// reported a parse failure.
	ErrParseError = errors.New("bfsdl: parse error")
)

// Stream driver errors (stream package).
var (
	// ErrReadFailed wraps an underlying io.Reader failure.
	ErrReadFailed = errors.New("bfsdl: read failed")
	// ErrUnparsedTrailingContent is returned when EOF arrives while the
	// buffer still holds bytes that do not decode to a complete code
	// point. A token left open at EOF yields ErrParseError instead.
	ErrUnparsedTrailingContent = errors.New("bfsdl: unparsed trailing content")
)
