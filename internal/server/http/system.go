package http

import (
	"net/http"
	"time"

	"github.com/coursepilot/coursepilot/internal/server/store"
	"github.com/coursepilot/coursepilot/pkg/httpx"
	"github.com/coursepilot/coursepilot/pkg/slogx"
)

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}

// LivezHandler godoc
//
//	@Summary		Health check endpoint
//	@Description	Liveness probe returning service status, uptime and version. Always 200 while the process runs.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness check endpoint
//	@Description	Readiness probe verifying the database connection.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	httpx.Message
//	@Failure		503	{object}	httpx.Message
//	@Router			/readyz [get].
func ReadyzHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("readiness probe failed", "error", err)
			httpx.WriteMessage(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		httpx.WriteMessage(w, http.StatusOK, "ready")
	}
}
