package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/render"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool argument keys, shared by schemas and handlers.
const (
	argPath   = "path"
	argOutput = "output"
	argMode   = "mode"
	argTitle  = "title"
)

type tools struct {
	conv  *convert.Converter
	intro render.Intro
	log   *slog.Logger
}

func registerTools(s *server.MCPServer, t *tools) {
	s.AddTool(
		mcp.NewTool("convert_to_slides",
			mcp.WithDescription("Convert a document into a .pptx slide deck written next to it. "+
				"Supported formats: "+strings.Join(supportedExtensions(), ", ")+"."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute path of the document to convert"),
			),
			mcp.WithString(argOutput,
				mcp.Description("Output path (default: input with .pptx extension)"),
			),
			mcp.WithString(argMode,
				mcp.Description("Segmentation mode: lines or structured"),
			),
			mcp.WithString(argTitle,
				mcp.Description("Override the deck title"),
			),
		),
		t.convertToSlides,
	)

	s.AddTool(
		mcp.NewTool("segment_document",
			mcp.WithDescription("Split a document into slide records and return them as JSON without rendering."),
			mcp.WithString(argPath,
				mcp.Required(),
				mcp.Description("Absolute path of the document to segment"),
			),
			mcp.WithString(argMode,
				mcp.Description("Segmentation mode: lines or structured"),
			),
		),
		t.segmentDocument,
	)

	s.AddTool(
		mcp.NewTool("get_conversion_info",
			mcp.WithDescription("Return supported input formats and segmentation modes."),
		),
		t.conversionInfo,
	)
}

func (t *tools) convertToSlides(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck, path, errResult := t.load(req)
	if errResult != nil {
		return errResult, nil
	}
	if title := stringArg(req, argTitle); title != "" {
		deck.Title = title
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, deck, t.intro); err != nil {
		return mcp.NewToolResultError("render: " + err.Error()), nil
	}

	out := stringArg(req, argOutput)
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".pptx"
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return mcp.NewToolResultError("write output: " + err.Error()), nil
	}
	t.log.Info("wrote presentation", "input", path, "output", out, "slides", len(deck.Slides)+1)
	return mcp.NewToolResultText(fmt.Sprintf("%s: %d slides", out, len(deck.Slides)+1)), nil
}

func (t *tools) segmentDocument(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	deck, _, errResult := t.load(req)
	if errResult != nil {
		return errResult, nil
	}
	data, err := json.MarshalIndent(deck, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (t *tools) conversionInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	sb.WriteString("Supported formats: " + strings.Join(supportedExtensions(), ", ") + "\n")
	sb.WriteString("Segmentation modes: " + string(convert.ModeLines) + ", " + string(convert.ModeStructured) + "\n")
	sb.WriteString("Default mode: " + string(t.conv.Mode) + "\n")
	sb.WriteString("Intro slide: " + t.intro.Title + " / " + t.intro.Subtitle + "\n")
	return mcp.NewToolResultText(sb.String()), nil
}

// load opens the path argument and segments it. A non-nil result is a tool
// error to hand back to the client.
func (t *tools) load(req mcp.CallToolRequest) (*convert.Deck, string, *mcp.CallToolResult) {
	path := stringArg(req, argPath)
	if path == "" {
		return nil, "", mcp.NewToolResultError(argPath + " is required")
	}

	conv := *t.conv
	if m := stringArg(req, argMode); m != "" {
		mode, err := convert.ParseMode(m)
		if err != nil {
			return nil, "", mcp.NewToolResultError(err.Error())
		}
		conv.Mode = mode
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", mcp.NewToolResultError("open input: " + err.Error())
	}
	defer f.Close()

	deck, err := conv.ConvertFile(f, filepath.Base(path))
	switch {
	case errors.Is(err, convert.ErrNoSlides):
		return nil, "", mcp.NewToolResultError(path + ": no slides found")
	case err != nil:
		return nil, "", mcp.NewToolResultError(err.Error())
	}
	return deck, path, nil
}

func stringArg(req mcp.CallToolRequest, key string) string {
	s, _ := req.Params.Arguments[key].(string)
	return strings.TrimSpace(s)
}

func supportedExtensions() []string {
	exts := make([]string, 0, len(parser.SupportedExtensions))
	for ext := range parser.SupportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
