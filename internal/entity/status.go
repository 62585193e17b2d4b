package entity

type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeDraw       Outcome = "draw"
)

// GameStatus is derived from a Board and is never stored alongside it.
type GameStatus struct {
	Outcome Outcome `json:"outcome"`
	Winner  Player  `json:"winner,omitempty"`
}

func InProgress() GameStatus {
	return GameStatus{Outcome: OutcomeInProgress}
}

func Won(player Player) GameStatus {
	return GameStatus{Outcome: OutcomeWon, Winner: player}
}

func Draw() GameStatus {
	return GameStatus{Outcome: OutcomeDraw}
}

func (that GameStatus) IsTerminal() bool {
	return that.Outcome != OutcomeInProgress
}

func (that GameStatus) IsWonBy(player Player) bool {
	return that.Outcome == OutcomeWon && that.Winner == player
}

func (that GameStatus) IsDraw() bool {
	return that.Outcome == OutcomeDraw
}

func (that GameStatus) String() string {
	if that.Outcome == OutcomeWon {
		return string(that.Outcome) + ":" + string(that.Winner)
	}
	return string(that.Outcome)
}
