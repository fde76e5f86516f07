package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/planner/internal/auth/store"
	"github.com/aussiebroadwan/planner/pkg/httpx"
	"github.com/aussiebroadwan/planner/pkg/plannersdk"
	"github.com/aussiebroadwan/planner/pkg/slogx"
)

// HealthHandler godoc
//
//	@Summary		Application Health
//	@Description	Pings the database. Also served at /health.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	plannersdk.APIHealthResponse	"status, timestamp, database"
//	@Failure		500	{object}	plannersdk.APIHealthResponse	"status, message"
//	@Router			/api/health [get].
func HealthHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("health check failed", slog.Any("error", err))
			httpx.WriteJSON(w, http.StatusInternalServerError, plannersdk.APIHealthResponse{
				Status:  "error",
				Message: MsgDatabaseDown,
			})
			return
		}

		now := time.Now().UTC()
		httpx.WriteJSON(w, http.StatusOK, plannersdk.APIHealthResponse{
			Status:    "ok",
			Timestamp: &now,
			Database:  "connected",
		})
	}
}
