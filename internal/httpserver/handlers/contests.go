package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

type listContestsResponse struct {
	Contests []domain.Contest `json:"contests"`
	Count    int              `json:"count"`
}

// ListContests returns stored contests, optionally filtered by the
// "platform" query parameter, sorted ascending by start time.
func ListContests(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var platform domain.Platform
		if raw := r.URL.Query().Get("platform"); raw != "" {
			p, err := domain.ParsePlatform(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			platform = p
		}

		contests, err := d.Contests.List(r.Context(), platform)
		if err != nil {
			d.Logger.Error("failed to list contests", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list contests")
			return
		}

		writeJSON(w, http.StatusOK, listContestsResponse{
			Contests: contests,
			Count:    len(contests),
		})
	}
}

// GetContest returns one contest by its canonical ID.
func GetContest(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		contest, err := d.Contests.Get(r.Context(), id)
		if err != nil {
			d.Logger.Error("failed to get contest",
				logger.String("id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to get contest")
			return
		}
		if contest == nil {
			writeError(w, http.StatusNotFound, "contest not found")
			return
		}
		writeJSON(w, http.StatusOK, contest)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
