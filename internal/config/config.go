package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort           = "8090"
	DefaultWorkerCount    = 4
	DefaultMaxQueueSize   = 100
	DefaultMaxUploadBytes = 10 << 20 // 10MB
	DefaultJobTTL         = time.Hour
	DefaultStatsWindow    = time.Hour
	DefaultResultCacheTTL = 10 * time.Minute
	DefaultSegmentMode    = "lines"
	DefaultIntroTitle     = "Presentation"
	DefaultIntroSubtitle  = "Generated by deckgest"
)

type Config struct {
	Port string

	// Auth
	DeckgestAPIKey string
	AuthDisabled   bool

	// Worker pool
	WorkerCount  int
	MaxQueueSize int

	// Upload limits
	MaxUploadBytes int64

	// Job state
	JobTTL time.Duration
	// Identical uploads reuse a rendered deck for this long; zero disables.
	ResultCacheTTL time.Duration

	// Conversion
	SegmentMode   string
	IntroTitle    string
	IntroSubtitle string

	// PDF
	PDFFallbackPdftotext bool

	// Render latency window
	StatsWindow time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", DefaultPort),

		DeckgestAPIKey: os.Getenv("DECKGEST_API_KEY"),
		AuthDisabled:   envBool("AUTH_DISABLED", false),

		WorkerCount:  envInt("WORKER_COUNT", DefaultWorkerCount),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", DefaultMaxQueueSize),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),

		JobTTL:         envDuration("JOB_TTL", DefaultJobTTL),
		ResultCacheTTL: envDuration("RESULT_CACHE_TTL", DefaultResultCacheTTL),

		SegmentMode:   strings.ToLower(envOr("SEGMENT_MODE", DefaultSegmentMode)),
		IntroTitle:    envOr("INTRO_TITLE", DefaultIntroTitle),
		IntroSubtitle: envOr("INTRO_SUBTITLE", DefaultIntroSubtitle),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),

		StatsWindow: envDuration("STATS_WINDOW", DefaultStatsWindow),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = DefaultMaxQueueSize
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = DefaultJobTTL
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = DefaultStatsWindow
	}

	return cfg
}

func (c Config) Validate() error {
	if c.DeckgestAPIKey == "" && !c.AuthDisabled {
		return errors.New("DECKGEST_API_KEY is required (or set AUTH_DISABLED=true)")
	}
	switch c.SegmentMode {
	case "lines", "structured":
	default:
		return fmt.Errorf("SEGMENT_MODE must be %q or %q, got %q", "lines", "structured", c.SegmentMode)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
