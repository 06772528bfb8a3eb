package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/handlers"
)

func init() { Register(registerContests) }

func registerContests(r chi.Router, d deps.Deps) {
	r.Get("/api/contests", handlers.ListContests(d))
	r.Get("/api/contests/{id}", handlers.GetContest(d))
}
