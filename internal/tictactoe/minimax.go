package tictactoe

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Terminal scores. Values are not adjusted by depth, so a slower win scores the same as a faster one.
const (
	ScoreOWins = 10
	ScoreXWins = -10
	ScoreDraw  = 0
)

// Evaluate returns the static score of a board from O's point of view.
func Evaluate(board *entity.Board) int {
	return scoreOf(board.Status())
}

func scoreOf(status entity.GameStatus) int {
	switch {
	case status.IsWonBy(entity.PlayerO):
		return ScoreOWins
	case status.IsWonBy(entity.PlayerX):
		return ScoreXWins
	default:
		return ScoreDraw
	}
}

// Minimax returns the exhaustive game value of the board, O maximizing and X minimizing.
// The board is mutated during the search and restored before returning.
func Minimax(board *entity.Board, maximizing bool) int {
	s := &searcher{board: board}
	return s.minimax(maximizing, math.MinInt, math.MaxInt)
}

type searcher struct {
	board   *entity.Board
	pruning bool
	nodes   int
}

func (that *searcher) minimax(maximizing bool, alpha, beta int) int {
	that.nodes++

	if status := that.board.Status(); status.IsTerminal() {
		return scoreOf(status)
	}

	if maximizing {
		best := math.MinInt
		for _, move := range that.board.LegalMoves() {
			value := that.try(move, entity.PlayerO, func() int {
				return that.minimax(false, alpha, beta)
			})

			best = max(best, value)
			if that.pruning {
				alpha = max(alpha, best)
				if alpha >= beta {
					break
				}
			}
		}
		return best
	}

	best := math.MaxInt
	for _, move := range that.board.LegalMoves() {
		value := that.try(move, entity.PlayerX, func() int {
			return that.minimax(true, alpha, beta)
		})

		best = min(best, value)
		if that.pruning {
			beta = min(beta, best)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

// try places a hypothetical mark, evaluates the position and always takes the mark back.
func (that *searcher) try(move entity.Move, player entity.Player, eval func() int) int {
	mustPlace(that.board, move, player)
	defer mustRemove(that.board, move)

	return eval()
}

// moves come from LegalMoves, so a failure here is a bug in the search itself.
func mustPlace(board *entity.Board, move entity.Move, player entity.Player) {
	if err := board.Place(move, player); err != nil {
		panic(fmt.Errorf("search placed an illegal move: %w", err))
	}
}

func mustRemove(board *entity.Board, move entity.Move) {
	if err := board.Remove(move); err != nil {
		panic(fmt.Errorf("search removed an illegal move: %w", err))
	}
}
