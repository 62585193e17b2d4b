package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager hosts games for the presentation layer. A controller is not safe for
// concurrent use, so every operation holds the manager lock from load to save.
type GameManager struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	opponent    tictactoe.Opponent

	mu  sync.Mutex
	now func() time.Time
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, opponent tictactoe.Opponent) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionRepo: sessionRepo,
		opponent:    opponent,

		now: time.Now,
	}
}

func (that *GameManager) NewGame(ctx context.Context) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game := tictactoe.NewGame(that.opponent)

	session := &entity.Session{ID: uuid.NewString()}
	if err := that.save(ctx, session, game); err != nil {
		return nil, err
	}

	that.logger.Info("game created", "sessionID", session.ID)

	return session, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ApplyHumanMove plays X's move only. The caller runs the opponent separately.
func (that *GameManager) ApplyHumanMove(ctx context.Context, id string, move entity.Move) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session, game *tictactoe.GameController) error {
		if _, err := game.ApplyHumanMove(move); err != nil {
			return err
		}

		session.OpponentMove = nil

		return nil
	})
}

func (that *GameManager) RunOpponentTurn(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session, game *tictactoe.GameController) error {
		move, _, err := game.RunOpponentTurn()
		if err != nil {
			return err
		}

		session.OpponentMove = &move

		return nil
	})
}

// MakeTurn plays X's move and, when the game goes on, O's answer in the same step.
func (that *GameManager) MakeTurn(ctx context.Context, id string, move entity.Move) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session, game *tictactoe.GameController) error {
		session.OpponentMove = nil

		if _, err := game.ApplyHumanMove(move); err != nil {
			return err
		}

		if game.Phase() != entity.PhaseAwaitingO {
			return nil
		}

		opponentMove, _, err := game.RunOpponentTurn()
		if err != nil {
			return err
		}

		session.OpponentMove = &opponentMove

		return nil
	})
}

func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session, game *tictactoe.GameController) error {
		game.Restart()
		session.OpponentMove = nil

		return nil
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("game deleted", "sessionID", id)

	return nil
}

// update loads the session, applies action to its controller and saves the result.
// Nothing is saved when action fails.
func (that *GameManager) update(
	ctx context.Context,
	id string,
	action func(session *entity.Session, game *tictactoe.GameController) error,
) (*entity.Session, error) {
	log := that.logger.With("method", "update", "sessionID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	game, err := tictactoe.Restore(that.opponent, session.Snapshot)
	if err != nil {
		log.Error("stored session is corrupted", "error", err)
		return nil, err
	}

	if err = action(session, game); err != nil {
		if errors.Is(err, apperror.ErrPreconditionViolation) {
			log.Warn("operation called in the wrong phase", "phase", game.Phase(), "error", err)
		}
		return nil, err
	}

	if err = that.save(ctx, session, game); err != nil {
		return nil, err
	}

	status := game.Status()
	log.Debug("session updated", "board", session.Snapshot.Board.String(), "phase", game.Phase(), "status", status.String())

	if status.IsTerminal() {
		log.Info("game finished", "status", status.String())
	}

	return session, nil
}

func (that *GameManager) save(ctx context.Context, session *entity.Session, game *tictactoe.GameController) error {
	session.Snapshot = game.Snapshot()
	session.UpdatedAt = that.now().UTC()

	if err := that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
