package handlers

import (
	"errors"
	"net/http"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/ingest"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

// RunIngestion triggers one ingestion run synchronously and returns its
// summary counts. While a scheduled or earlier manual run holds the
// run-lock, the request is rejected with 409 rather than queued.
func RunIngestion(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := d.Runner.Run(r.Context())
		switch {
		case errors.Is(err, ingest.ErrRunInProgress):
			d.Logger.Warn("manual ingestion rejected, run already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			writeError(w, http.StatusConflict, "ingestion run already in progress")
		case err != nil:
			d.Logger.Error("manual ingestion failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "ingestion run failed")
		default:
			d.Logger.Info("manual ingestion completed",
				logger.String("remote_ip", r.RemoteAddr),
				logger.Int("new", summary.New),
				logger.Int("updated", summary.Updated))
			writeJSON(w, http.StatusOK, summary)
		}
	}
}
