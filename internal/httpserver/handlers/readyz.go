package handlers

import (
	"net/http"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

type readyzResponse struct {
	Ready  bool   `json:"ready"`
	Sqlite string `json:"sqlite"`
	Redis  string `json:"redis"`
}

// Readyz reports readiness by pinging both stores.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{Ready: true, Sqlite: "ok", Redis: "ok"}

		if err := d.Contests.Ping(r.Context()); err != nil {
			d.Logger.Warn("readiness: sqlite ping failed", logger.Error(err))
			resp.Ready = false
			resp.Sqlite = err.Error()
		}
		if err := d.Bookmarks.Ping(r.Context()); err != nil {
			d.Logger.Warn("readiness: redis ping failed", logger.Error(err))
			resp.Ready = false
			resp.Redis = err.Error()
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, resp)
	}
}
