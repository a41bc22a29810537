// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/wandernext/internal/app/store/document"
	"github.com/dalemusser/wandernext/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Docs *document.Store
	Log  *zap.Logger
}

// NewHandler constructs a health Handler over the document store.
func NewHandler(docs *document.Store, logger *zap.Logger) *Handler {
	return &Handler{Docs: docs, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Store   string `json:"store"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "store":"available" }
//
// On store failure: 503 and
//
//	{ "status":"error", "store":"unavailable", "message":"Store unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status: "ok",
		Store:  "available",
	}

	if _, err := h.Docs.Load(ctx); err != nil {
		h.Log.Error("health-check: document load failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Store = "unavailable"
		resp.Message = "Store unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}
