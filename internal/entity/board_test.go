package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

func boardOf(t *testing.T, rows ...string) *Board {
	t.Helper()

	require.Len(t, rows, BoardSize)

	board := NewBoard()
	for row, line := range rows {
		require.Len(t, line, BoardSize)
		for col, ch := range line {
			switch ch {
			case 'X':
				board.Cells[row][col] = CellX
			case 'O':
				board.Cells[row][col] = CellO
			}
		}
	}

	return board
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places the player's mark on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: player X places a mark in the center
		err := board.Place(Move{Row: 1, Col: 1}, PlayerX)

		// Then: the center should hold X
		require.NoError(t, err)
		assert.Equal(t, CellX, board.Cell(Move{Row: 1, Col: 1}))
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a board where X holds the corner
		board := boardOf(t, "X..", "...", "...")
		before := *board

		// When: player O tries the same corner
		err := board.Place(Move{Row: 0, Col: 0}, PlayerO)

		// Then: an invalid move error should be returned and the board left as it was
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *board)
	})

	t.Run("Error on coordinates out of range", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		for _, move := range []Move{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
			// When: a move outside the grid is placed
			err := board.Place(move, PlayerX)

			// Then: an out of range error should be returned
			require.ErrorIs(t, err, apperror.ErrInvalidMove)
			require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
		}

		assert.Equal(t, Board{}, *board)
	})
}

func TestBoard_Cell(t *testing.T) {
	board := boardOf(t, "X..", ".O.", "...")

	assert.Equal(t, CellX, board.Cell(Move{Row: 0, Col: 0}))
	assert.Equal(t, CellO, board.Cell(Move{Row: 1, Col: 1}))
	assert.Equal(t, EmptyCell, board.Cell(Move{Row: 2, Col: 2}))

	for _, move := range []Move{{Row: -1, Col: 0}, {Row: 0, Col: 3}, {Row: 3, Col: 3}} {
		assert.NotPanics(t, func() {
			assert.Equal(t, EmptyCell, board.Cell(move), "move %s", move)
		})
	}
}

func TestBoard_Remove(t *testing.T) {
	t.Run("Place followed by Remove restores the board", func(t *testing.T) {
		// Given: a board in the middle of a game
		board := boardOf(t, "XO.", ".X.", "...")
		before := *board

		// When: O is placed and removed again
		require.NoError(t, board.Place(Move{Row: 2, Col: 2}, PlayerO))
		require.NoError(t, board.Remove(Move{Row: 2, Col: 2}))

		// Then: the board should be exactly as before
		assert.Equal(t, before, *board)
	})

	t.Run("Error on coordinates out of range", func(t *testing.T) {
		board := NewBoard()

		err := board.Remove(Move{Row: 5, Col: 0})

		require.ErrorIs(t, err, apperror.ErrCellOutOfRange)
	})
}

func TestBoard_Winner(t *testing.T) {
	testCases := []struct {
		name      string
		rows      []string
		winner    Player
		hasWinner bool
	}{
		{name: "Row", rows: []string{"XXX", "OO.", "..."}, winner: PlayerX, hasWinner: true},
		{name: "Column", rows: []string{"OX.", "OX.", "O.X"}, winner: PlayerO, hasWinner: true},
		{name: "Main diagonal", rows: []string{"XO.", "OX.", "..X"}, winner: PlayerX, hasWinner: true},
		{name: "Anti diagonal", rows: []string{"XXO", "XO.", "O.."}, winner: PlayerO, hasWinner: true},
		{name: "No line", rows: []string{"XO.", "...", "..."}, hasWinner: false},
		{name: "Empty board", rows: []string{"...", "...", "..."}, hasWinner: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a board
			board := boardOf(t, tc.rows...)

			// When: checking for a winner
			winner, ok := board.Winner()

			// Then: the owner of the completed line should be reported
			assert.Equal(t, tc.hasWinner, ok)
			assert.Equal(t, tc.winner, winner)
		})
	}
}

func TestBoard_Status(t *testing.T) {
	t.Run("Won by X regardless of remaining empty cells", func(t *testing.T) {
		// Given: X has three in a row with empty cells left
		board := boardOf(t, "XXX", "OO.", "...")

		// When: computing the status
		status := board.Status()

		// Then: X should be reported as the winner
		assert.Equal(t, Won(PlayerX), status)
		assert.True(t, status.IsTerminal())
	})

	t.Run("Draw on a full board without a winner", func(t *testing.T) {
		// Given: a full board with no line
		board := boardOf(t, "XOX", "XOO", "OXX")

		// When: computing the status
		status := board.Status()

		// Then: the game should be a draw
		assert.Equal(t, Draw(), status)
		assert.True(t, status.IsDraw())
	})

	t.Run("Winner is checked before fullness", func(t *testing.T) {
		// Given: the last move filled the board and completed a line
		board := boardOf(t, "XOX", "OXO", "OXX")

		// When: computing the status
		status := board.Status()

		// Then: the winner should be reported, not a draw
		assert.Equal(t, Won(PlayerX), status)
	})

	t.Run("In progress otherwise", func(t *testing.T) {
		board := boardOf(t, "X..", ".O.", "...")

		status := board.Status()

		assert.Equal(t, InProgress(), status)
		assert.False(t, status.IsTerminal())
	})
}

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Empty cells in row-major order", func(t *testing.T) {
		// Given: a board with a few marks
		board := boardOf(t, "X.O", ".X.", "O..")

		// When: listing the legal moves
		moves := board.LegalMoves()

		// Then: the empty cells should be enumerated row by row
		assert.Equal(t, []Move{
			{Row: 0, Col: 1},
			{Row: 1, Col: 0},
			{Row: 1, Col: 2},
			{Row: 2, Col: 1},
			{Row: 2, Col: 2},
		}, moves)
	})

	t.Run("No moves on a full board", func(t *testing.T) {
		board := boardOf(t, "XOX", "XOO", "OXX")

		assert.Empty(t, board.LegalMoves())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Validate(t *testing.T) {
	t.Run("Accepts alternating counts", func(t *testing.T) {
		assert.NoError(t, boardOf(t, "...", "...", "...").Validate())
		assert.NoError(t, boardOf(t, "X..", "...", "...").Validate())
		assert.NoError(t, boardOf(t, "XO.", "...", "...").Validate())
	})

	t.Run("Rejects O moving first", func(t *testing.T) {
		err := boardOf(t, "O..", "...", "...").Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidSnapshot)
	})

	t.Run("Rejects X moving twice", func(t *testing.T) {
		err := boardOf(t, "XX.", "...", "...").Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidSnapshot)
	})

	t.Run("Rejects unknown cell values", func(t *testing.T) {
		board := NewBoard()
		board.Cells[1][2] = "Z"

		err := board.Validate()

		require.ErrorIs(t, err, apperror.ErrInvalidSnapshot)
		assert.Contains(t, err.Error(), "(1,2)")
	})
}

func TestBoard_String(t *testing.T) {
	board := boardOf(t, "X.O", ".X.", "..O")

	assert.Equal(t, "X.O/.X./..O", board.String())
}
