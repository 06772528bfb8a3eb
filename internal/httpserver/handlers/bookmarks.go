package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

type bookmarksResponse struct {
	ContestIDs []string         `json:"contest_ids"`
	Contests   []domain.Contest `json:"contests"`
}

// ListBookmarks returns a user's bookmarked contest IDs and, for IDs
// that still exist in the canonical store, the hydrated contests.
// Bookmarks are soft references: an ID orphaned by the retention sweep
// still appears in contest_ids but not in contests.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		ids, err := d.Bookmarks.List(r.Context(), userID)
		if err != nil {
			d.Logger.Error("failed to list bookmarks",
				logger.String("user_id", userID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to list bookmarks")
			return
		}

		contests := make([]domain.Contest, 0, len(ids))
		for _, id := range ids {
			contest, err := d.Contests.Get(r.Context(), id)
			if err != nil {
				d.Logger.Error("failed to hydrate bookmark",
					logger.String("contest_id", id),
					logger.Error(err))
				writeError(w, http.StatusInternalServerError, "failed to load bookmarked contests")
				return
			}
			if contest != nil {
				contests = append(contests, *contest)
			}
		}

		writeJSON(w, http.StatusOK, bookmarksResponse{ContestIDs: ids, Contests: contests})
	}
}

// AddBookmark associates a contest ID with a user. The ID is not
// checked against the canonical store (soft reference).
func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		contestID := chi.URLParam(r, "contestID")
		if err := d.Bookmarks.Add(r.Context(), userID, contestID); err != nil {
			d.Logger.Error("failed to add bookmark",
				logger.String("user_id", userID),
				logger.String("contest_id", contestID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to add bookmark")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RemoveBookmark drops one bookmark. Removing a non-existent bookmark
// succeeds (idempotent delete).
func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")
		contestID := chi.URLParam(r, "contestID")
		if err := d.Bookmarks.Remove(r.Context(), userID, contestID); err != nil {
			d.Logger.Error("failed to remove bookmark",
				logger.String("user_id", userID),
				logger.String("contest_id", contestID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to remove bookmark")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
