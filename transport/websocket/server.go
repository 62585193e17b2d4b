package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionError       = "error"
	actionGameNew     = "game:new"
	actionGameState   = "game:state"
	actionGameTurn    = "game:turn"
	actionGameRestart = "game:restart"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (*entity.Session, error)
	GetGame(ctx context.Context, id string) (*entity.Session, error)
	MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
}

type handlerFunc func(ctx context.Context, message *Message) (*Message, error)

// Server plays games over a websocket connection, one request message per response message.
type Server struct {
	logger   *slog.Logger
	games    gameUseCase
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	server.handlers = map[string]handlerFunc{
		actionGameNew:     server.handleNewGame,
		actionGameState:   server.handleGameState,
		actionGameTurn:    server.handleGameTurn,
		actionGameRestart: server.handleRestart,
	}

	return server
}

// ServeHTTP upgrades the request and serves messages until the client disconnects.
func (that *Server) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// the upgrader has already replied with an HTTP error
		log.Warn("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("websocket connection established", "remote", conn.RemoteAddr().String())

	that.handleMessages(req.Context(), conn)
}

func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var response *Message

		var message Message
		if err = json.Unmarshal(raw, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			response = errorMessage("", errMalformedMessage.Error())
		} else {
			response = that.dispatch(ctx, &message)
		}

		if err := conn.WriteJSON(response); err != nil {
			log.Error("failed to send response", "action", response.Action, "error", err)
			return
		}
	}
}

func (that *Server) dispatch(ctx context.Context, message *Message) *Message {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return errorMessage(message.Action, "unknown action")
	}

	response, err := handler(ctx, message)
	if err != nil {
		that.logger.Warn("error processing message", "action", message.Action, "error", err)
		return errorMessage(message.Action, err.Error())
	}

	return response
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
