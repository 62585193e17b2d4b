package entity

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

type Phase string

const (
	PhaseAwaitingX Phase = "awaiting_x"
	PhaseAwaitingO Phase = "awaiting_o"
	PhaseTerminal  Phase = "terminal"
)

// ExpectedPhase derives the phase a board implies: terminal when won or full, otherwise by whose turn it is.
func ExpectedPhase(board *Board) Phase {
	if board.Status().IsTerminal() {
		return PhaseTerminal
	}

	if xCount, oCount := board.Counts(); xCount > oCount {
		return PhaseAwaitingO
	}

	return PhaseAwaitingX
}

// Snapshot is the serialisable state of a single game.
type Snapshot struct {
	Board Board `json:"board"`
	Phase Phase `json:"phase"`
}

func (that *Snapshot) Validate() error {
	if err := that.Board.Validate(); err != nil {
		return err
	}

	if expected := ExpectedPhase(&that.Board); that.Phase != expected {
		return fmt.Errorf("%w: phase %q, board implies %q", apperror.ErrInvalidSnapshot, that.Phase, expected)
	}

	return nil
}

// Session is one hosted game.
type Session struct {
	ID           string    `json:"id"`
	Snapshot     Snapshot  `json:"snapshot"`
	OpponentMove *Move     `json:"opponent_move,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
