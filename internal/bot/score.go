package bot

import (
	"github.com/apex/log"
	"github.com/montanaflynn/stats"

	"github.com/benbeisheim/variantchess-backend/internal/model"
)

// best keeps the moves sharing the top score. moves must not be empty.
func best(moves []model.Move, score func(model.Move) int) []model.Move {
	scores := make([]float64, 0, len(moves))
	for _, m := range moves {
		scores = append(scores, float64(score(m)))
	}
	top, err := stats.Max(stats.Float64Data(scores))
	if err != nil {
		log.WithError(err).Warn("scoring candidate moves")
		return moves
	}
	out := make([]model.Move, 0, len(moves))
	for i, m := range moves {
		if scores[i] == top {
			out = append(out, m)
		}
	}
	return out
}
