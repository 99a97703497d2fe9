// Command bfsdlparse validates a BFSDL specification file and dumps the
// parsed properties and fields.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arloliu/bfsdl"
	"github.com/arloliu/bfsdl/diag"
	"github.com/arloliu/bfsdl/tree"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("bfsdlparse", flag.ContinueOnError)
	file := fs.String("file", "", "path to specification file")
	testMode := fs.Bool("testing", false, "format output for system tests")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *file == "" {
		fmt.Fprintln(os.Stderr, "bfsdlparse: --file is required")
		fs.Usage()

		return 2
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bfsdlparse: cannot open file: %v\n", err)

		return 1
	}
	defer f.Close()

	if !*testMode {
		fmt.Printf("File: %s\n", *file)
	}

	sink := diag.NewSink(nil, nil, func(module string, line int, text string) {
		fmt.Fprint(os.Stderr, text)
		if len(text) == 0 || text[len(text)-1] != '\n' {
			fmt.Fprintln(os.Stderr)
		}
	})

	spec, err := bfsdl.Parse(f, bfsdl.WithFilename(*file), bfsdl.WithDiagnostics(sink))
	if err != nil {
		return 1
	}

	dump(spec, *testMode)

	return 0
}

func dump(spec *tree.Tree, testMode bool) {
	spec.IterateProperties(func(p *tree.Property) {
		fmt.Printf("PROP %s=%s\n", p.Name(), renderProperty(p, testMode))
	})
	spec.IterateFields(func(f *tree.Field) {
		fmt.Printf("FIELD %s\n", f.Name)
	})
}

func renderProperty(p *tree.Property, testMode bool) string {
	switch p.Name() {
	case "DefaultByteOrder", "DefaultBitOrder":
		v, err := p.AsU64()
		if err != nil {
			return "<invalid>"
		}
		switch v {
		case 0:
			return "LE"
		case 1:
			return "BE"
		default:
			return fmt.Sprintf("<invalid> (%d)", v)
		}
	case "Filename":
		if testMode {
			return "<valid>"
		}

		return p.AsStringUTF8()
	default:
		return p.AsStringUTF8()
	}
}
