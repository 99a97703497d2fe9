// Package stream implements the driver: the single component that owns an
// io.Reader, pumps chunks through a symbolizer/tokenizer/interpreter
// pipeline, and renders the one formatted diagnostic a failed parse
// produces.
package stream

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/bfsdl/codec"
	"github.com/arloliu/bfsdl/diag"
	"github.com/arloliu/bfsdl/errs"
	"github.com/arloliu/bfsdl/interp"
	"github.com/arloliu/bfsdl/position"
	"github.com/arloliu/bfsdl/symbol"
	"github.com/arloliu/bfsdl/token"
	"github.com/arloliu/bfsdl/tree"
)

// DefaultChunkSize is used when a caller passes a non-positive chunk size
// to New.
const DefaultChunkSize = 4096

const (
	pretextLen  = 32
	posttextLen = 16
)

// filenameProperty is the property the driver consults for the name used
// in diagnostics. A caller populates it on tr before calling New; an empty
// tree gets a generic placeholder name instead.
const filenameProperty = "Filename"

// Driver pumps a byte stream through the parser pipeline to completion,
// writing properties and fields into a tree.Tree. It is single-use: build
// one per parse.
type Driver struct {
	chunkSize  int
	tracker    *position.Tracker
	symbolizer *symbol.Symbolizer
	tokenizer  *token.Tokenizer
	reporter   diag.Reporter
}

// New builds a Driver that decodes with c, reports diagnostics through
// sink, and writes into tr. chunkSize <= 0 selects DefaultChunkSize.
func New(tr *tree.Tree, c codec.Codec, sink diag.Sink, chunkSize int) (*Driver, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	name := tr.GetStringProperty(filenameProperty)
	if name == "" {
		name = "<stream>"
	}

	tracker, err := position.New(name, pretextLen, posttextLen)
	if err != nil {
		return nil, err
	}

	it, err := interp.New(tr, diag.NewReporter(sink, "Token::Interpreter"))
	if err != nil {
		return nil, err
	}

	tok, err := token.New(it, diag.NewReporter(sink, "Token::Tokenizer"))
	if err != nil {
		return nil, err
	}

	sym := symbol.New(c, token.NewRegistry(), tok)

	return &Driver{
		chunkSize:  chunkSize,
		tracker:    tracker,
		symbolizer: sym,
		tokenizer:  tok,
		reporter:   diag.NewReporter(sink, "Stream::Driver"),
	}, nil
}

// Parse reads r to completion, feeding every byte through the pipeline.
// It returns nil on success. On a parse failure it has already emitted the
// formatted diagnostic to the Runtime sink and returns errs.ErrParseError;
// a read failure returns errs.ErrReadFailed, wrapped.
func (d *Driver) Parse(r io.Reader) error {
	buf := make([]byte, d.chunkSize)
	dataStart := 0

	for {
		n, readErr := r.Read(buf[dataStart:])
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("%w: %v", errs.ErrReadFailed, readErr)
		}

		total := dataStart + n
		if total == 0 {
			break
		}

		needMore := false
		i := 0
		for i < total {
			consumed, ok := d.symbolizer.Parse(buf[i:total])
			if consumed > 0 {
				d.tracker.ProcessNewData(buf[i : i+consumed])
			}

			if !ok {
				d.tracker.ProcessRemainder(buf[i+consumed : total])
				d.emitDiagnostic()

				return errs.ErrParseError
			}

			if consumed == 0 {
				if total == len(buf) {
					return fmt.Errorf("%w: chunk size too small to decode a symbol", errs.ErrReadFailed)
				}

				copy(buf, buf[i:total])
				dataStart = total - i
				needMore = true

				break
			}

			i += consumed
		}

		if !needMore {
			dataStart = 0
		}

		if readErr == io.EOF {
			if needMore {
				d.tracker.ProcessRemainder(nil)
				d.emitDiagnostic()

				return errs.ErrUnparsedTrailingContent
			}

			break
		}
	}

	if !d.symbolizer.EndParsing() {
		d.emitDiagnostic()

		return errs.ErrParseError
	}

	if !d.tokenizer.EndParsing() {
		d.emitDiagnostic()

		return errs.ErrParseError
	}

	return nil
}

// emitDiagnostic renders the context-and-caret diagnostic from the
// tracker's current position and writes it to the Runtime channel. Each
// component's own reporter has already logged the substantive error
// message (e.g. "Unknown config 'Frobnicate' with parameter numeric literal
// '#1'"); this is the driver's
// separate, position-focused report.
func (d *Driver) emitDiagnostic() {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Parse Error: %s@%d:%d\n", d.tracker.Name(), d.tracker.CurrentLine(), d.tracker.CurrentColumn())

	truncated := d.tracker.ContextBeginColumn() != 0
	if truncated {
		sb.WriteString("...")
	}
	sb.WriteString(d.tracker.PrintableContext())
	sb.WriteByte('\n')

	caretCol := d.tracker.ContextPositionOffset() - 1
	if caretCol < 0 {
		caretCol = 0
	}
	if truncated {
		sb.WriteString("   ")
	}
	sb.WriteString(strings.Repeat(" ", caretCol))
	sb.WriteString("^\n")

	d.reporter.Runtime(d.tracker.CurrentLine(), sb.String())
}
