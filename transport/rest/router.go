package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Session, error)
	GetGame(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	DeleteGame(ctx context.Context, id string) error
}

// NewRouter wires the REST routes. extra routes are mounted as given, e.g. the websocket endpoint.
func NewRouter(logger *slog.Logger, games gameUseCase, extra map[string]http.Handler) http.Handler {
	h := &handlers{
		logger: logger.With("component", "rest"),
		games:  games,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", h.ping)

	r.Post("/games", h.createGame)
	r.Route("/games/{id}", func(r chi.Router) {
		r.Get("/", h.getGame)
		r.Delete("/", h.deleteGame)
		r.Post("/moves", h.makeTurn)
		r.Post("/restart", h.restart)
	})

	for pattern, handler := range extra {
		r.Handle(pattern, handler)
	}

	return r
}
