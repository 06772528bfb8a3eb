package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/handlers"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.Get("/api/users/{userID}/bookmarks", handlers.ListBookmarks(d))
	r.Put("/api/users/{userID}/bookmarks/{contestID}", handlers.AddBookmark(d))
	r.Delete("/api/users/{userID}/bookmarks/{contestID}", handlers.RemoveBookmark(d))
}
