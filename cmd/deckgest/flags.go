package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/render"
	flag "github.com/spf13/pflag"
)

var errHelp = errors.New("help requested")

type options struct {
	input         string
	output        string
	json          bool
	outline       bool
	mode          convert.Mode
	title         string
	introTitle    string
	introSubtitle string
	pdftotext     bool
	verbose       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts options
		mode string
	)

	fs := flag.NewFlagSet("deckgest", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: deckgest [flags] <input>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Converts .md, .markdown, .txt, .csv, .html, .htm, .pdf, .docx, .xlsx or .epub into a .pptx deck.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	fs.StringVarP(&opts.output, "output", "o", "", "output path (default: input with .pptx extension)")
	fs.BoolVar(&opts.json, "json", false, "print slide records as JSON instead of writing a deck")
	fs.BoolVar(&opts.outline, "outline", false, "print a table of slides instead of writing a deck")
	fs.StringVar(&mode, "mode", string(convert.ModeLines), "segmentation mode: lines or structured")
	fs.StringVar(&opts.title, "title", "", "override the deck title")
	fs.StringVar(&opts.introTitle, "intro-title", render.DefaultIntro.Title, "intro slide title")
	fs.StringVar(&opts.introSubtitle, "intro-subtitle", render.DefaultIntro.Subtitle, "intro slide subtitle")
	fs.BoolVar(&opts.pdftotext, "pdftotext", true, "fall back to pdftotext when PDF extraction fails")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one input file, got %d", fs.NArg())
	}
	opts.input = fs.Arg(0)

	m, err := convert.ParseMode(mode)
	if err != nil {
		return opts, err
	}
	opts.mode = m
	if opts.json && opts.outline {
		return opts, errors.New("--json and --outline are mutually exclusive")
	}
	return opts, nil
}
