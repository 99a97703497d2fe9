// Package bfsdl parses Binary Format Stream Definition Language (BFSDL)
// specifications: textual descriptions of how to decode a binary data
// stream. A specification opens with a header block of named parameters
// (version, bit base, byte order, string defaults) bracketed by
// `:BFSDL_HEADER:` and `:END_HEADER:`, followed by field declarations.
//
// Parsing runs as a pull-driven pipeline: bytes from an io.Reader are
// decoded into code points and classified into symbols, symbols are
// promoted into tokens, and tokens drive a grammar state machine that
// writes header properties into an object tree. Statements after the
// header are rejected, so no field descriptors are written.
//
// # Basic Usage
//
// Parsing a specification from any reader:
//
//	import "github.com/arloliu/bfsdl"
//
//	f, _ := os.Open("stream.bfsdl")
//	defer f.Close()
//
//	spec, err := bfsdl.Parse(f, bfsdl.WithFilename("stream.bfsdl"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	version, _ := spec.FindProperty("Version").AsU64()
//
// Diagnostics are silent by default. To observe them, inject a sink:
//
//	sink := diag.NewSink(nil, nil, func(module string, line int, text string) {
//	    fmt.Fprintf(os.Stderr, "[%s] %s", module, text)
//	})
//	spec, err := bfsdl.Parse(f, bfsdl.WithDiagnostics(sink))
//
// # Package Structure
//
// This package is a convenience wrapper around the stream package's
// driver. For fine-grained control (custom symbol categories, direct
// tokenizer observation), use the stream, token, and symbol packages
// directly.
package bfsdl

import (
	"io"

	"github.com/arloliu/bfsdl/codec"
	"github.com/arloliu/bfsdl/diag"
	"github.com/arloliu/bfsdl/stream"
	"github.com/arloliu/bfsdl/tree"
)

// config collects the knobs Parse accepts through options.
type config struct {
	filename  string
	chunkSize int
	codecName string
	sink      diag.Sink
}

// Option configures a single Parse call.
type Option func(*config)

// WithFilename sets the name used in parse diagnostics, stored on the
// result tree as its Filename property.
func WithFilename(name string) Option {
	return func(c *config) { c.filename = name }
}

// WithChunkSize sets the read-buffer size. Non-positive values select
// stream.DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(c *config) { c.chunkSize = n }
}

// WithCodec selects the codec, by canonical name, used to decode the
// specification text itself. The default is ASCII.
func WithCodec(name string) Option {
	return func(c *config) { c.codecName = name }
}

// WithDiagnostics routes Internal/Misuse/Runtime diagnostics to sink
// instead of dropping them.
func WithDiagnostics(sink diag.Sink) Option {
	return func(c *config) { c.sink = sink }
}

// Parse reads a BFSDL specification from r to completion and returns the
// populated object tree. On failure the partial tree is discarded and the
// error wraps one of the errs package sentinels (errs.ErrParseError for a
// syntax or semantic error, errs.ErrReadFailed for an I/O failure).
func Parse(r io.Reader, opts ...Option) (*tree.Tree, error) {
	cfg := config{codecName: "ASCII"}
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := codec.GetByName(cfg.codecName)
	if err != nil {
		return nil, err
	}

	tr := tree.New()
	if cfg.filename != "" {
		p := tree.NewProperty("Filename")
		p.SetString(cfg.filename)
		if err := tr.AddProperty(p); err != nil {
			return nil, err
		}
	}

	d, err := stream.New(tr, c, cfg.sink, cfg.chunkSize)
	if err != nil {
		return nil, err
	}

	if err := d.Parse(r); err != nil {
		return nil, err
	}

	return tr, nil
}
