package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	HumanPlayer    = entity.PlayerX
	OpponentPlayer = entity.PlayerO
)

// Opponent chooses the move for O. Engine implements it.
type Opponent interface {
	FindBestMove(board *entity.Board) (entity.Move, error)
}

// GameController drives a single game: X is the human, O is chosen by the opponent.
// It is not safe for concurrent use.
type GameController struct {
	board    *entity.Board
	phase    entity.Phase
	opponent Opponent
}

func NewGame(opponent Opponent) *GameController {
	return &GameController{
		board:    entity.NewBoard(),
		phase:    entity.PhaseAwaitingX,
		opponent: opponent,
	}
}

// Restore rebuilds a controller from a snapshot after checking it is consistent.
func Restore(opponent Opponent, snapshot entity.Snapshot) (*GameController, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	board := snapshot.Board

	return &GameController{
		board:    &board,
		phase:    snapshot.Phase,
		opponent: opponent,
	}, nil
}

func (that *GameController) ApplyHumanMove(move entity.Move) (entity.GameStatus, error) {
	if err := that.confirmPhase(entity.PhaseAwaitingX); err != nil {
		return entity.GameStatus{}, err
	}

	if err := that.board.Place(move, HumanPlayer); err != nil {
		return entity.GameStatus{}, fmt.Errorf("invalid turn: %w", err)
	}

	return that.advance(entity.PhaseAwaitingO), nil
}

func (that *GameController) RunOpponentTurn() (entity.Move, entity.GameStatus, error) {
	if err := that.confirmPhase(entity.PhaseAwaitingO); err != nil {
		return entity.Move{}, entity.GameStatus{}, err
	}

	move, err := that.opponent.FindBestMove(that.board)
	if err != nil {
		return entity.Move{}, entity.GameStatus{}, fmt.Errorf("failed to find opponent move: %w", err)
	}

	if err = that.board.Place(move, OpponentPlayer); err != nil {
		return entity.Move{}, entity.GameStatus{}, fmt.Errorf("opponent made invalid turn: %w", err)
	}

	return move, that.advance(entity.PhaseAwaitingX), nil
}

// CurrentBoard returns a copy; changes to it do not affect the game.
func (that *GameController) CurrentBoard() entity.Board {
	return *that.board
}

func (that *GameController) Restart() {
	that.board = entity.NewBoard()
	that.phase = entity.PhaseAwaitingX
}

func (that *GameController) Phase() entity.Phase {
	return that.phase
}

func (that *GameController) Status() entity.GameStatus {
	return that.board.Status()
}

func (that *GameController) Snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board: *that.board,
		Phase: that.phase,
	}
}

// confirmPhase rejects calls made out of turn. These are integration bugs in the caller.
func (that *GameController) confirmPhase(want entity.Phase) error {
	if that.phase == want {
		return nil
	}

	if that.phase == entity.PhaseTerminal {
		return fmt.Errorf("%w: %w", apperror.ErrPreconditionViolation, apperror.ErrGameFinished)
	}

	return fmt.Errorf("%w: %w: phase %s", apperror.ErrPreconditionViolation, apperror.ErrNotYourTurn, that.phase)
}

// advance recomputes the status and moves to the next phase, or to terminal.
func (that *GameController) advance(next entity.Phase) entity.GameStatus {
	status := that.board.Status()
	if status.IsTerminal() {
		that.phase = entity.PhaseTerminal
	} else {
		that.phase = next
	}

	return status
}
