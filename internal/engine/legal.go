package engine

import "github.com/benbeisheim/variantchess-backend/internal/model"

// LegalMoves returns the destinations of the piece on from that do not leave
// its own king in check. An empty or invalid square yields nil.
func LegalMoves(board model.Board, from model.Square, lastMove *model.LastMove) []model.Square {
	piece, ok := board.At(from)
	if !ok {
		return nil
	}
	pseudoMoves := PseudoLegalMoves(board, from, lastMove)
	if piece.Type == model.King {
		return pseudoMoves
	}
	return filterLegalMoves(board, piece, from, pseudoMoves, lastMove)
}

func filterLegalMoves(board model.Board, piece model.Piece, from model.Square, pseudoMoves []model.Square, lastMove *model.LastMove) []model.Square {
	legalMoves := make([]model.Square, 0, len(pseudoMoves))
	for _, to := range pseudoMoves {
		sim := simulate(board, piece, from, to, lastMove != nil)
		if !IsKingInCheck(sim, piece.Color) {
			legalMoves = append(legalMoves, to)
		}
	}
	return legalMoves
}

// simulate relocates piece on a copy of board, removing a pawn taken en passant
// when enPassant is allowed. Promotion does not matter for king safety.
func simulate(board model.Board, piece model.Piece, from, to model.Square, enPassant bool) model.Board {
	sim := board.Clone()
	if enPassant {
		if victim, ok := enPassantVictim(board, piece, from, to); ok {
			delete(sim, victim)
		}
	}
	delete(sim, from)
	sim[to] = piece
	return sim
}

// enPassantVictim returns the square of the pawn removed when piece moves
// diagonally from from onto the empty square to.
func enPassantVictim(board model.Board, piece model.Piece, from, to model.Square) (model.Square, bool) {
	if piece.Type != model.Pawn {
		return "", false
	}
	if _, occupied := board[to]; occupied {
		return "", false
	}
	fromPos, ok := model.KeyToPosition(from)
	if !ok {
		return "", false
	}
	toPos, ok := model.KeyToPosition(to)
	if !ok || abs(toPos.Col-fromPos.Col) != 1 {
		return "", false
	}
	return model.PositionToKey(fromPos.Row, toPos.Col), true
}

// AllLegalMoves lists every legal move for color, in board order.
func AllLegalMoves(board model.Board, color model.Color, lastMove *model.LastMove) []model.Move {
	moves := []model.Move{}
	for _, from := range board.Squares() {
		if board[from].Color != color {
			continue
		}
		for _, to := range LegalMoves(board, from, lastMove) {
			moves = append(moves, model.Move{From: from, To: to})
		}
	}
	return moves
}

// HasLegalMove stops at the first legal move found for color.
func HasLegalMove(board model.Board, color model.Color, lastMove *model.LastMove) bool {
	for _, from := range board.Squares() {
		if board[from].Color != color {
			continue
		}
		if len(LegalMoves(board, from, lastMove)) > 0 {
			return true
		}
	}
	return false
}

// IsLegalMove reports whether from->to is among the legal moves of the piece on from.
func IsLegalMove(board model.Board, from, to model.Square, lastMove *model.LastMove) bool {
	for _, sq := range LegalMoves(board, from, lastMove) {
		if sq == to {
			return true
		}
	}
	return false
}
