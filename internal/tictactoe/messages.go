package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

const (
	MessageYourTurn    = "Your Turn (X)"
	MessageAIThinking  = "AI Thinking..."
	MessageHumanWins   = "You Win!"
	MessageOpponentWin = "AI Wins!"
	MessageDraw        = "Draw!"
)

// StatusMessage is the line shown to the player for the given phase and outcome.
func StatusMessage(phase entity.Phase, status entity.GameStatus) string {
	switch {
	case status.IsWonBy(HumanPlayer):
		return MessageHumanWins
	case status.IsWonBy(OpponentPlayer):
		return MessageOpponentWin
	case status.IsDraw():
		return MessageDraw
	case phase == entity.PhaseAwaitingO:
		return MessageAIThinking
	default:
		return MessageYourTurn
	}
}
