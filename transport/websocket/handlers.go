package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/transport/view"
)

var (
	errGameIDRequired = errors.New("game_id is required")
	errMoveRequired   = errors.New("row and col are required")

	errMalformedMessage = errors.New("malformed message")
)

func (that *Server) handleNewGame(ctx context.Context, msg *Message) (*Message, error) {
	session, err := that.games.NewGame(ctx)
	if err != nil {
		return nil, err
	}

	that.logger.Info("game created over websocket", "sessionID", session.ID)

	return gameMessage(msg.Action, view.NewGame(session)), nil
}

func (that *Server) handleGameState(ctx context.Context, msg *Message) (*Message, error) {
	req, err := parsePayload(msg)
	if err != nil {
		return nil, err
	}

	session, err := that.games.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	return gameMessage(msg.Action, view.NewGame(session)), nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message) (*Message, error) {
	req, err := parsePayload(msg)
	if err != nil {
		return nil, err
	}

	if req.Row == nil || req.Col == nil {
		return nil, errMoveRequired
	}

	session, err := that.games.MakeTurn(ctx, req.GameID, entity.Move{Row: *req.Row, Col: *req.Col})
	if err != nil {
		return nil, err
	}

	return gameMessage(msg.Action, view.NewGame(session)), nil
}

func (that *Server) handleRestart(ctx context.Context, msg *Message) (*Message, error) {
	req, err := parsePayload(msg)
	if err != nil {
		return nil, err
	}

	session, err := that.games.Restart(ctx, req.GameID)
	if err != nil {
		return nil, err
	}

	return gameMessage(msg.Action, view.NewGame(session)), nil
}

func parsePayload(msg *Message) (*RequestPayload, error) {
	var req RequestPayload
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if req.GameID == "" {
		return nil, errGameIDRequired
	}

	return &req, nil
}
