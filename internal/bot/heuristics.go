package bot

import (
	"github.com/benbeisheim/variantchess-backend/internal/engine"
	"github.com/benbeisheim/variantchess-backend/internal/model"
)

// capturedPiece returns the enemy piece move would remove, including a pawn
// taken en passant right after its two-square advance.
func capturedPiece(board model.Board, color model.Color, lastMove *model.LastMove, move model.Move) (model.Piece, bool) {
	mover, ok := board.At(move.From)
	if !ok {
		return model.Piece{}, false
	}
	if target, ok := board.At(move.To); ok {
		return target, target.Color != color
	}
	if mover.Type != model.Pawn || lastMove == nil || !lastMove.MovedTwoSquares {
		return model.Piece{}, false
	}
	from, ok := model.KeyToPosition(move.From)
	if !ok {
		return model.Piece{}, false
	}
	to, ok := model.KeyToPosition(move.To)
	if !ok || abs(to.Col-from.Col) != 1 || abs(to.Row-from.Row) != 1 {
		return model.Piece{}, false
	}
	victimSq := model.PositionToKey(from.Row, to.Col)
	if lastMove.To != victimSq {
		return model.Piece{}, false
	}
	victim, ok := board.At(victimSq)
	if !ok || victim.Type != model.Pawn || victim.Color == color {
		return model.Piece{}, false
	}
	return victim, true
}

func isCapture(board model.Board, color model.Color, lastMove *model.LastMove, move model.Move) bool {
	_, ok := capturedPiece(board, color, lastMove, move)
	return ok
}

func captureValue(board model.Board, color model.Color, lastMove *model.LastMove, move model.Move) int {
	victim, ok := capturedPiece(board, color, lastMove, move)
	if !ok {
		return 0
	}
	return victim.Type.Value()
}

func captureMoves(board model.Board, color model.Color, lastMove *model.LastMove, moves []model.Move) []model.Move {
	out := []model.Move{}
	for _, m := range moves {
		if isCapture(board, color, lastMove, m) {
			out = append(out, m)
		}
	}
	return out
}

// threatValue plays move on a copy and returns the highest value among the
// enemy pieces the moved piece could then reach. Zero means no threat.
func threatValue(board model.Board, color model.Color, move model.Move) int {
	out, ok := engine.ApplyMove(board, move.From, move.To)
	if !ok {
		return 0
	}
	value := 0
	for _, target := range engine.PseudoLegalMoves(out.Board, move.To, nil) {
		victim, ok := out.Board.At(target)
		if !ok || victim.Color == color {
			continue
		}
		if v := victim.Type.Value(); v > value {
			value = v
		}
	}
	return value
}

func threatMoves(board model.Board, color model.Color, moves []model.Move) []model.Move {
	out := []model.Move{}
	for _, m := range moves {
		if threatValue(board, color, m) > 0 {
			out = append(out, m)
		}
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
