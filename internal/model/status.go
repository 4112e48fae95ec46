package model

type GameStatus string

const (
	StatusOngoing   GameStatus = "ongoing"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
)

func (s GameStatus) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

// Outcome is a finished game seen from the human player's side.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

type GameResult struct {
	Status  GameStatus `json:"status"`
	Winner  *Color     `json:"winner"`
	Outcome Outcome    `json:"outcome"`
}

// NewGameResult derives the result for a game where toMove is about to play
// and the human plays human.
func NewGameResult(status GameStatus, toMove, human Color) GameResult {
	result := GameResult{Status: status}
	switch status {
	case StatusCheckmate:
		winner := toMove.Opponent()
		result.Winner = &winner
		if winner == human {
			result.Outcome = OutcomeWin
		} else {
			result.Outcome = OutcomeLoss
		}
	case StatusStalemate:
		result.Outcome = OutcomeDraw
	}
	return result
}
