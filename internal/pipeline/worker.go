package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/deckgest/internal/convert"
	"github.com/dgallion1/deckgest/internal/parser"
	"github.com/dgallion1/deckgest/internal/render"
)

// Worker converts a single document job into a presentation.
type Worker struct {
	converter *convert.Converter
	intro     render.Intro
	stats     *render.Stats
	cache     *ResultCache
	log       *slog.Logger
}

func NewWorker(conv *convert.Converter, intro render.Intro, stats *render.Stats, cache *ResultCache, log *slog.Logger) *Worker {
	return &Worker{
		converter: conv,
		intro:     intro,
		stats:     stats,
		cache:     cache,
		log:       log,
	}
}

// Process runs parse, segment and render for a job. Failures are recorded
// on the job rather than returned.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if hit, ok := w.cache.get(job); ok {
		job.SetSlideCount(hit.slides)
		job.Complete(hit.title, hit.data)
		log.Info("served from result cache", "bytes", len(hit.data))
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename, w.converter.Parser)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.Fail(KindClient, "parsing", err.Error())
		return
	}
	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.Fail(KindClient, "parsing", fmt.Sprintf("parse: %s", err))
		return
	}
	if cancelled(ctx, job, "parsing") {
		return
	}

	// Phase 2: Segment
	job.SetStatus(StatusSegmenting, "segmenting")
	deck, err := w.converter.Convert(doc)
	if err != nil {
		// Convert only fails with convert.ErrNoSlides.
		log.Warn("no slides produced", "error", err)
		job.Fail(KindContent, "segmenting", err.Error())
		return
	}
	if job.Title != "" {
		deck.Title = job.Title
	}
	job.SetSlideCount(len(deck.Slides))
	log.Info("segmented document", "slides", len(deck.Slides), "mode", w.converter.Mode)
	if cancelled(ctx, job, "segmenting") {
		return
	}

	// Phase 3: Render
	job.SetStatus(StatusRendering, "rendering")
	var buf bytes.Buffer
	start := time.Now()
	err = render.Render(&buf, deck, w.intro)
	w.stats.Observe(start)
	if err != nil {
		log.Error("render failed", "error", err)
		job.Fail(KindRenderer, "rendering", fmt.Sprintf("render: %s", err))
		return
	}

	w.cache.put(job, cachedResult{title: deck.Title, slides: len(deck.Slides), data: buf.Bytes()})
	job.Complete(deck.Title, buf.Bytes())
	log.Info("conversion complete", "bytes", buf.Len(), "duration_ms", time.Since(start).Milliseconds())
}

func cancelled(ctx context.Context, job *Job, phase string) bool {
	if ctx.Err() == nil {
		return false
	}
	job.Fail(KindCancelled, phase, "cancelled: "+ctx.Err().Error())
	return true
}
