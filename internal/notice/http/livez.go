package http

import (
	"net/http"
	"time"

	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
)

// LivezHandler reports process liveness. It never touches dependencies, so it
// only fails if the process itself is wedged.
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	noticesdk.HealthResponse	"Process is alive"
//	@Router		/livez [get].
func LivezHandler(startTime time.Time, version string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.NoCache(w)
		httpx.WriteJSON(w, http.StatusOK, noticesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
		})
	})
}
