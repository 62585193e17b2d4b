package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/transport/view"
)

type handlers struct {
	logger *slog.Logger
	games  gameUseCase
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *handlers) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write ping response", "error", err)
	}
}

func (that *handlers) createGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.NewGame(r.Context())
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, view.NewGame(session))
}

func (that *handlers) getGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view.NewGame(session))
}

func (that *handlers) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Row == nil || req.Col == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"row\": int, \"col\": int}"})
		return
	}

	move := entity.Move{Row: *req.Row, Col: *req.Col}

	session, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), move)
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view.NewGame(session))
}

func (that *handlers) restart(w http.ResponseWriter, r *http.Request) {
	session, err := that.games.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, err)
		return
	}

	that.writeJSON(w, http.StatusOK, view.NewGame(session))
}

func (that *handlers) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", r.URL.Path, "error", err)
		that.writeJSON(w, code, errorResponse{Error: http.StatusText(code)})
		return
	}

	that.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (that *handlers) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

// StatusCode maps a use-case error to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrInvalidMove):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrPreconditionViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
