// Package bot picks moves for the computer opponent. Each difficulty adds one
// preference filter on top of the tier below it before falling back to a
// uniform random legal move.
package bot

import (
	"crypto/rand"
	"math/big"

	"github.com/apex/log"

	"github.com/benbeisheim/variantchess-backend/internal/engine"
	"github.com/benbeisheim/variantchess-backend/internal/model"
)

// Picker returns a uniform index in [0, n). n is always positive.
type Picker func(n int) int

type Bot struct {
	pick Picker
}

type Option func(*Bot)

// WithPicker replaces the crypto/rand draw, mostly for tests.
func WithPicker(p Picker) Option {
	return func(b *Bot) {
		b.pick = p
	}
}

func New(opts ...Option) *Bot {
	b := &Bot{pick: cryptoPick}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func cryptoPick(n int) int {
	choice, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		log.WithError(err).Error("random draw failed")
		return 0
	}
	return int(choice.Int64())
}

// SelectMove chooses a move for color. ok is false when color has no legal
// move, which is the checkmate or stalemate case.
func (b *Bot) SelectMove(board model.Board, color model.Color, lastMove *model.LastMove, difficulty Difficulty) (model.Move, bool) {
	moves := engine.AllLegalMoves(board, color, lastMove)
	if len(moves) == 0 {
		return model.Move{}, false
	}

	entry := log.WithFields(log.Fields{
		"color":      color,
		"difficulty": difficulty,
		"candidates": len(moves),
	})

	switch difficulty {
	case Medium:
		if captures := captureMoves(board, color, lastMove, moves); len(captures) > 0 {
			entry.Debug("bot chose a capture")
			return b.choose(captures), true
		}
	case Hard:
		if captures := captureMoves(board, color, lastMove, moves); len(captures) > 0 {
			entry.Debug("bot chose a capture")
			return b.choose(captures), true
		}
		if threats := threatMoves(board, color, moves); len(threats) > 0 {
			entry.Debug("bot chose a threat")
			return b.choose(threats), true
		}
	case Pro:
		if captures := captureMoves(board, color, lastMove, moves); len(captures) > 0 {
			entry.Debug("bot chose the best capture")
			return b.choose(best(captures, func(m model.Move) int {
				return captureValue(board, color, lastMove, m)
			})), true
		}
		if threats := threatMoves(board, color, moves); len(threats) > 0 {
			entry.Debug("bot chose the best threat")
			return b.choose(best(threats, func(m model.Move) int {
				return threatValue(board, color, m)
			})), true
		}
	}
	entry.Debug("bot chose a random move")
	return b.choose(moves), true
}

func (b *Bot) choose(moves []model.Move) model.Move {
	i := b.pick(len(moves))
	if i < 0 || i >= len(moves) {
		i = 0
	}
	return moves[i]
}
