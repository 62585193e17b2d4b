package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const BoardSize = 3

type Cell string

const (
	EmptyCell Cell = ""
	CellX     Cell = "X"
	CellO     Cell = "O"
)

type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Mark returns the cell value the player leaves on the board.
func (that Player) Mark() Cell {
	return Cell(that)
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Move addresses a single cell, 0-indexed.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) InRange() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// WinLines holds the 3 rows, 3 columns and 2 diagonals.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board struct {
	Cells [BoardSize][BoardSize]Cell `json:"cells"`
}

func NewBoard() *Board {
	return &Board{}
}

// Cell returns the mark at move, or EmptyCell when move is off the board.
func (that *Board) Cell(move Move) Cell {
	if !move.InRange() {
		return EmptyCell
	}

	return that.Cells[move.Row][move.Col]
}

// Place puts the player's mark on an empty cell.
func (that *Board) Place(move Move, player Player) error {
	if !move.InRange() {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOutOfRange, move)
	}

	if that.Cells[move.Row][move.Col] != EmptyCell {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOccupied, move)
	}

	that.Cells[move.Row][move.Col] = player.Mark()

	return nil
}

// Remove clears a cell. Only the search uses it, to undo a hypothetical placement.
func (that *Board) Remove(move Move) error {
	if !move.InRange() {
		return fmt.Errorf("%w: %w: %s", apperror.ErrInvalidMove, apperror.ErrCellOutOfRange, move)
	}

	that.Cells[move.Row][move.Col] = EmptyCell

	return nil
}

// Winner reports the owner of a completed line. X is checked before O.
func (that *Board) Winner() (Player, bool) {
	for _, player := range []Player{PlayerX, PlayerO} {
		if that.hasLine(player.Mark()) {
			return player, true
		}
	}

	return "", false
}

func (that *Board) hasLine(mark Cell) bool {
	for _, line := range WinLines {
		if that.Cell(line[0]) == mark && that.Cell(line[1]) == mark && that.Cell(line[2]) == mark {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

// Status must check the winner before fullness: the last move can fill the board and win.
func (that *Board) Status() GameStatus {
	if winner, ok := that.Winner(); ok {
		return Won(winner)
	}

	if that.IsFull() {
		return Draw()
	}

	return InProgress()
}

// LegalMoves lists the empty cells in row-major order. The search relies on this order for tie-breaking.
func (that *Board) LegalMoves() []Move {
	moves := make([]Move, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that.Cells[row][col] == EmptyCell {
				moves = append(moves, Move{Row: row, Col: col})
			}
		}
	}

	return moves
}

func (that *Board) Counts() (int, int) {
	var xCount, oCount int
	for _, row := range that.Cells {
		for _, cell := range row {
			switch cell {
			case CellX:
				xCount++
			case CellO:
				oCount++
			}
		}
	}

	return xCount, oCount
}

// Validate checks that every cell holds a known value and that X moved first with alternating turns.
func (that *Board) Validate() error {
	for row := range BoardSize {
		for col := range BoardSize {
			switch cell := that.Cells[row][col]; cell {
			case EmptyCell, CellX, CellO:
			default:
				return fmt.Errorf("%w: unknown cell value %q at (%d,%d)", apperror.ErrInvalidSnapshot, cell, row, col)
			}
		}
	}

	xCount, oCount := that.Counts()
	if diff := xCount - oCount; diff != 0 && diff != 1 {
		return fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidSnapshot, xCount, oCount)
	}

	return nil
}

func (that *Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			switch cell := that.Cells[row][col]; cell {
			case EmptyCell:
				sb.WriteByte('.')
			default:
				sb.WriteString(string(cell))
			}
		}
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
