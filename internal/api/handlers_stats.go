package api

import (
	"net/http"
)

func (s *Server) handleRenderStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "render stats unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stats":          s.stats.Snapshot(),
		"queue_depth":    s.orchestrator.QueueDepth(),
		"cached_results": s.orchestrator.CachedResults(),
	})
}
