package view

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Game is the session as both transports render it.
type Game struct {
	ID           string                                          `json:"id"`
	Board        [entity.BoardSize][entity.BoardSize]entity.Cell `json:"board"`
	Phase        entity.Phase                                    `json:"phase"`
	Status       entity.GameStatus                               `json:"status"`
	Message      string                                          `json:"message"`
	OpponentMove *entity.Move                                    `json:"opponent_move,omitempty"`
}

func NewGame(session *entity.Session) *Game {
	board := session.Snapshot.Board
	status := board.Status()

	return &Game{
		ID:           session.ID,
		Board:        board.Cells,
		Phase:        session.Snapshot.Phase,
		Status:       status,
		Message:      tictactoe.StatusMessage(session.Snapshot.Phase, status),
		OpponentMove: session.OpponentMove,
	}
}
