package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/deps"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/httpserver/handlers"
)

func init() { Register(registerIngest) }

func registerIngest(r chi.Router, d deps.Deps) {
	r.Post("/api/ingest/run", handlers.RunIngestion(d))
}
