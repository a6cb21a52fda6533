package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/render"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func convertFile(opts options, stdout, stderr io.Writer) error {
	log := newLogger(stderr, opts.verbose)

	f, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	conv := &convert.Converter{
		Mode:   opts.mode,
		Parser: parser.Options{PDFFallbackPdftotext: opts.pdftotext},
	}
	deck, err := conv.ConvertFile(f, filepath.Base(opts.input))
	if errors.Is(err, convert.ErrNoSlides) {
		return fmt.Errorf("%s: no slides found", opts.input)
	}
	if err != nil {
		return err
	}
	if opts.title != "" {
		deck.Title = opts.title
	}
	log.Debug("segmented document", "input", opts.input, "slides", len(deck.Slides), "mode", opts.mode)

	switch {
	case opts.json:
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(deck)
	case opts.outline:
		printOutline(stdout, deck)
		return nil
	}

	var buf bytes.Buffer
	start := time.Now()
	if err := render.Render(&buf, deck, render.Intro{Title: opts.introTitle, Subtitle: opts.introSubtitle}); err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = defaultOutput(opts.input)
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("wrote presentation", "output", out, "bytes", buf.Len(), "duration_ms", time.Since(start).Milliseconds())
	fmt.Fprintf(stdout, "%s: %d slides\n", out, len(deck.Slides)+1)
	return nil
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".pptx"
}
