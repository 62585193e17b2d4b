package apperror

import "errors"

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrCellOutOfRange = errors.New("cell is out of range")

	ErrPreconditionViolation = errors.New("operation is not allowed in the current phase")
	ErrNotYourTurn           = errors.New("it's not your turn")
	ErrGameFinished          = errors.New("game is already finished")
	ErrNoLegalMoves          = errors.New("no legal moves")

	ErrInvalidSnapshot = errors.New("invalid game snapshot")
	ErrSessionNotFound = errors.New("session not found")
)
