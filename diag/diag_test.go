package diag_test

import (
	"testing"

	"github.com/arloliu/bfsdl/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinkDefaultsToNoop(t *testing.T) {
	var s diag.Sink
	r := diag.NewReporter(s, "Test::Module")
	assert.NotPanics(t, func() {
		r.Internal(1, "boom")
		r.Misuse(2, "boom")
		r.Runtime(3, "boom")
	})
}

func TestReporterRoutesToCorrectChannel(t *testing.T) {
	var gotModule string
	var gotLine int
	var gotText string
	var channel string

	sink := diag.NewSink(
		func(m string, l int, t string) { channel = "internal"; gotModule, gotLine, gotText = m, l, t },
		func(m string, l int, t string) { channel = "misuse"; gotModule, gotLine, gotText = m, l, t },
		func(m string, l int, t string) { channel = "runtime"; gotModule, gotLine, gotText = m, l, t },
	)
	r := diag.NewReporter(sink, "Token::Tokenizer")

	r.Runtime(7, "unexpected symbol")
	require.Equal(t, "runtime", channel)
	assert.Equal(t, "Token::Tokenizer", gotModule)
	assert.Equal(t, 7, gotLine)
	assert.Equal(t, "unexpected symbol", gotText)

	r.Internal(0, "unreachable state")
	assert.Equal(t, "internal", channel)

	r.Misuse(0, "bad argument")
	assert.Equal(t, "misuse", channel)
}
