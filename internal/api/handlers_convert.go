package api

import (
	"bytes"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/render"
)

// handleConvert converts an upload synchronously and returns the .pptx.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	deck, ok := s.convertUpload(w, up)
	if !ok {
		return
	}

	var buf bytes.Buffer
	start := time.Now()
	err := render.Render(&buf, deck, s.intro)
	s.stats.Observe(start)
	if err != nil {
		s.log.Error("render failed", "filename", up.filename, "error", err)
		jsonError(w, "failed to render presentation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", render.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": outputFilename(up.filename),
	}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Slide-Count", strconv.Itoa(len(deck.Slides)))
	w.Write(buf.Bytes())
}

// handleSlides returns the segmented records as JSON without rendering.
func (s *Server) handleSlides(w http.ResponseWriter, r *http.Request) {
	up, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	deck, ok := s.convertUpload(w, up)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

// convertUpload parses and segments an upload, mapping failures onto
// client (400) and content (422) errors.
func (s *Server) convertUpload(w http.ResponseWriter, up upload) (*convert.Deck, bool) {
	deck, err := s.converter.ConvertFile(bytes.NewReader(up.data), up.filename)
	switch {
	case err == nil:
	case errors.Is(err, convert.ErrNoSlides):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return nil, false
	case errors.Is(err, parser.ErrUnsupported):
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	default:
		s.log.Warn("parse failed", "filename", up.filename, "error", err)
		jsonError(w, "could not parse document: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if up.title != "" {
		deck.Title = up.title
	}
	return deck, true
}
