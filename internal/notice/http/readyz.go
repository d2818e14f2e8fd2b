package http

import (
	"net/http"
	"time"

	"github.com/driftlock/noticeboard/internal/notice/store"
	"github.com/driftlock/noticeboard/pkg/httpx"
	"github.com/driftlock/noticeboard/pkg/noticesdk"
	"github.com/driftlock/noticeboard/pkg/slogx"
)

// ReadyzHandler reports readiness to serve traffic. It pings the database and
// returns 503 with a degraded status while it is unreachable.
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	noticesdk.HealthResponse	"Ready to serve traffic"
//	@Failure	503	{object}	noticesdk.HealthResponse	"A dependency is unavailable"
//	@Router		/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		resp := noticesdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: version,
			Checks:  &noticesdk.HealthChecks{Database: "ok"},
		}

		code := http.StatusOK
		if err := st.Ping(ctx); err != nil {
			slogx.FromContext(ctx).Error("readiness check failed", "check", "database", "err", err)
			resp.Status = "degraded"
			resp.Checks.Database = "unavailable"
			code = http.StatusServiceUnavailable
		}

		httpx.NoCache(w)
		httpx.WriteJSON(w, code, resp)
	})
}
