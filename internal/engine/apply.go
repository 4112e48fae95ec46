package engine

import "github.com/benbeisheim/variantchess-backend/internal/model"

// Outcome is the result of applying a move.
type Outcome struct {
	Board    model.Board
	LastMove model.LastMove
	// Captured is set when a piece left the board, CapturedOn is where it stood.
	Captured   *model.Piece
	CapturedOn model.Square
	EnPassant  bool
	Promoted   bool
}

// ApplyMove plays from->to on a copy of board. It does not check legality;
// callers validate with LegalMoves first. ok is false when from is empty or a
// key is invalid.
func ApplyMove(board model.Board, from, to model.Square) (Outcome, bool) {
	piece, ok := board.At(from)
	if !ok {
		return Outcome{}, false
	}
	fromPos, ok := model.KeyToPosition(from)
	if !ok {
		return Outcome{}, false
	}
	toPos, ok := model.KeyToPosition(to)
	if !ok {
		return Outcome{}, false
	}

	out := Outcome{Board: board.Clone()}

	if victim, ok := board.At(to); ok {
		out.Captured = &victim
		out.CapturedOn = to
	} else if sq, ok := enPassantVictim(board, piece, from, to); ok {
		if victim, ok := board.At(sq); ok && victim.Type == model.Pawn && victim.Color != piece.Color {
			out.Captured = &victim
			out.CapturedOn = sq
			out.EnPassant = true
			delete(out.Board, sq)
		}
	}

	moved := piece
	moved.HasMoved = true
	if piece.Type == model.Pawn && isPromotionRank(piece.Color, toPos.Row) {
		moved.Type = model.Queen
		out.Promoted = true
	}
	delete(out.Board, from)
	out.Board[to] = moved

	out.LastMove = model.LastMove{
		From:            from,
		To:              to,
		MovedTwoSquares: piece.Type == model.Pawn && abs(toPos.Row-fromPos.Row) == 2,
	}
	return out, true
}

// isPromotionRank is rank 12 for white and rank 1 for black.
func isPromotionRank(color model.Color, row int) bool {
	if color == model.White {
		return row == 0
	}
	return row == model.BoardSize-1
}
