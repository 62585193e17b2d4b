package tictactoe

import (
	"io"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// SearchResult describes the move chosen for O.
type SearchResult struct {
	Move  entity.Move
	Score int
	Nodes int
}

// Engine picks O's move by exhaustive minimax. With pruning enabled it uses alpha-beta,
// which visits fewer nodes but always chooses the same move as the plain search.
type Engine struct {
	logger  *slog.Logger
	pruning bool
}

func NewEngine(logger *slog.Logger, pruning bool) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Engine{
		logger:  logger.With("component", "engine"),
		pruning: pruning,
	}
}

// FindBestMove returns the optimal move for O, the first one in row-major order on ties.
func FindBestMove(board *entity.Board) (entity.Move, error) {
	return NewEngine(nil, false).FindBestMove(board)
}

func (that *Engine) FindBestMove(board *entity.Board) (entity.Move, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.Move{}, err
	}

	return result.Move, nil
}

// Search evaluates every legal O move and keeps the first one with the strictly greatest score.
// The board is left exactly as it was passed in.
func (that *Engine) Search(board *entity.Board) (SearchResult, error) {
	log := that.logger.With("method", "Search")

	if board.Status().IsTerminal() {
		return SearchResult{}, apperror.ErrNoLegalMoves
	}

	s := &searcher{board: board, pruning: that.pruning}
	result := SearchResult{Score: math.MinInt}
	alpha := math.MinInt

	for _, move := range board.LegalMoves() {
		score := s.try(move, entity.PlayerO, func() int {
			return s.minimax(false, alpha, math.MaxInt)
		})

		if score > result.Score {
			result.Move = move
			result.Score = score
		}

		if that.pruning {
			alpha = max(alpha, result.Score)
		}
	}

	result.Nodes = s.nodes

	log.Debug("best move found",
		"board", board.String(),
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", result.Nodes,
		"pruning", that.pruning,
	)

	return result, nil
}
