// Command deckgest-mcp exposes slide conversion as MCP tools over stdio.
package main

import (
	"log/slog"
	"os"

	"github.com/dgallion1/deckgest/internal/config"
	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/render"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "deckgest"
	serverVersion = "0.1.0"
)

func main() {
	// Stdout carries the protocol.
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cfg := config.Load()
	mode, err := convert.ParseMode(cfg.SegmentMode)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	t := &tools{
		conv: &convert.Converter{
			Mode:   mode,
			Parser: parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext},
		},
		intro: render.Intro{Title: cfg.IntroTitle, Subtitle: cfg.IntroSubtitle},
		log:   log,
	}

	s := server.NewMCPServer(serverName, serverVersion)
	registerTools(s, t)

	log.Info("serving mcp over stdio", "mode", mode)
	if err := server.ServeStdio(s); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
