package interp_test

import (
	"testing"

	"github.com/arloliu/bfsdl/diag"
	"github.com/arloliu/bfsdl/interp"
	"github.com/arloliu/bfsdl/token"
	"github.com/arloliu/bfsdl/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInterp(t *testing.T) (*interp.Interpreter, *tree.Tree, *bool) {
	t.Helper()

	tr := tree.New()
	var failed bool
	reporter := diag.NewReporter(diag.NewSink(nil, nil, func(string, int, string) { failed = true }), "test")

	it, err := interp.New(tr, reporter)
	require.NoError(t, err)

	return it, tr, &failed
}

func decimalLiteral(digits string) token.Literal {
	return token.Literal{Base: token.Decimal, IntegerDigits: digits}
}

func TestMinimalHeaderAppliesDefaults(t *testing.T) {
	it, tr, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("END_HEADER"))
	require.True(t, it.OnControl(":"))

	require.False(t, *failed)

	v, err := tr.FindProperty("Version").AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	bb, err := tr.FindProperty("BitBase").AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(8), bb)

	assert.Equal(t, "ASCII", tr.GetStringProperty("DefaultStringCode"))
}

func TestVersionParameterIsStored(t *testing.T) {
	it, tr, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("Version"))
	require.True(t, it.OnControl("="))
	require.True(t, it.OnNumericLiteral(decimalLiteral("3")))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("END_HEADER"))
	require.True(t, it.OnControl(":"))

	require.False(t, *failed)
	v, err := tr.FindProperty("Version").AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)
}

func TestBitBaseStringValueResolves(t *testing.T) {
	it, tr, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BitBase"))
	require.True(t, it.OnControl("="))
	require.True(t, it.OnStringLiteral("Bit"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("END_HEADER"))
	require.True(t, it.OnControl(":"))

	require.False(t, *failed)
	bb, err := tr.FindProperty("BitBase").AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), bb)
}

func TestInvalidBitBaseValueFails(t *testing.T) {
	it, _, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BitBase"))
	require.True(t, it.OnControl("="))
	assert.False(t, it.OnStringLiteral("Nibble"))
	assert.True(t, *failed)
}

func TestUnknownParameterFails(t *testing.T) {
	it, _, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("Bogus"))
	require.True(t, it.OnControl("="))
	assert.False(t, it.OnStringLiteral("x"))
	assert.True(t, *failed)
}

func TestParameterRedefinitionFails(t *testing.T) {
	it, _, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("Version"))
	require.True(t, it.OnControl("="))
	require.True(t, it.OnNumericLiteral(decimalLiteral("1")))

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("Version"))
	require.True(t, it.OnControl("="))
	assert.False(t, it.OnNumericLiteral(decimalLiteral("2")))
	assert.True(t, *failed)
}

func TestMissingOpeningColonFails(t *testing.T) {
	it, _, failed := newInterp(t)
	assert.False(t, it.OnWord("BFSDL_HEADER"))
	assert.True(t, *failed)
}

func TestStatementBodyIsUnimplemented(t *testing.T) {
	it, _, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("END_HEADER"))
	// The colon closing the END_HEADER statement is absorbed here.
	require.True(t, it.OnControl(":"))
	require.False(t, *failed)

	// Any further input is a body statement attempt, which errors.
	assert.False(t, it.OnControl(":"))
	assert.True(t, *failed)
}

func TestDefaultByteOrderRedefinitionFails(t *testing.T) {
	it, tr, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("DefaultByteOrder"))
	require.True(t, it.OnControl("="))
	require.True(t, it.OnStringLiteral("BE"))

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("DefaultByteOrder"))
	require.True(t, it.OnControl("="))
	assert.False(t, it.OnStringLiteral("LE"))
	assert.True(t, *failed)

	v, err := tr.FindProperty("DefaultByteOrder").AsU64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestDuplicateHeaderDefinitionFails(t *testing.T) {
	it, _, failed := newInterp(t)

	require.True(t, it.OnControl(":"))
	require.True(t, it.OnWord("BFSDL_HEADER"))
	require.True(t, it.OnControl(":"))

	require.True(t, it.OnControl(":"))
	assert.False(t, it.OnWord("BFSDL_HEADER"))
	assert.True(t, *failed)
}
