package engine

import "github.com/benbeisheim/variantchess-backend/internal/model"

// IsSquareUnderAttack reports whether any piece of byColor attacks sq. It is
// derived independently of the move generators so it also answers for a
// square occupied by the king being tested.
func IsSquareUnderAttack(board model.Board, sq model.Square, byColor model.Color) bool {
	pos, ok := model.KeyToPosition(sq)
	if !ok {
		return false
	}
	for _, pt := range model.PieceTypes {
		if attackedBy(board, pos, byColor, pt) {
			return true
		}
	}
	return false
}

// attackedBy must handle every model.PieceType, in step with PseudoLegalMoves.
func attackedBy(board model.Board, pos model.Position, byColor model.Color, pt model.PieceType) bool {
	switch pt {
	case model.Pawn:
		row := pos.Row + byColor.PawnDirection()
		for _, dCol := range []int{-1, 1} {
			if hasPiece(board, model.PositionToKey(row, pos.Col+dCol), byColor, model.Pawn) {
				return true
			}
		}
		return false
	case model.Knight:
		return stepAttack(board, pos, byColor, model.Knight, knightOffsets)
	case model.King:
		return stepAttack(board, pos, byColor, model.King, allDirs)
	case model.Bishop:
		return slideAttack(board, pos, byColor, diagonalDirs, model.Bishop)
	case model.Rook:
		return slideAttack(board, pos, byColor, orthogonalDirs, model.Rook)
	case model.Queen:
		return slideAttack(board, pos, byColor, allDirs, model.Queen)
	case model.Sword:
		return jumpAttack(board, pos, byColor, diagonalDirs, model.Sword)
	case model.Shield:
		return jumpAttack(board, pos, byColor, orthogonalDirs, model.Shield)
	case model.Rider:
		return jumpAttack(board, pos, byColor, allDirs, model.Rider)
	}
	return false
}

func hasPiece(board model.Board, sq model.Square, color model.Color, pt model.PieceType) bool {
	if sq == "" {
		return false
	}
	p, ok := board[sq]
	return ok && p.Color == color && p.Type == pt
}

func stepAttack(board model.Board, pos model.Position, byColor model.Color, pt model.PieceType, offsets []direction) bool {
	for _, d := range offsets {
		if hasPiece(board, pos.Offset(d.dRow, d.dCol), byColor, pt) {
			return true
		}
	}
	return false
}

// slideAttack ray-casts from pos; the first occupant on the ray decides.
func slideAttack(board model.Board, pos model.Position, byColor model.Color, dirs []direction, pt model.PieceType) bool {
	for _, d := range dirs {
		for row, col := pos.Row+d.dRow, pos.Col+d.dCol; model.IsValidPosition(row, col); row, col = row+d.dRow, col+d.dCol {
			p, ok := board[model.PositionToKey(row, col)]
			if !ok {
				continue
			}
			if p.Color == byColor && p.Type == pt {
				return true
			}
			break
		}
	}
	return false
}

// jumpAttack ray-casts from pos, skipping the attacker's own pieces, since a
// jumper passes over them. Any piece of the other color blocks the ray.
func jumpAttack(board model.Board, pos model.Position, byColor model.Color, dirs []direction, pt model.PieceType) bool {
	for _, d := range dirs {
		for row, col := pos.Row+d.dRow, pos.Col+d.dCol; model.IsValidPosition(row, col); row, col = row+d.dRow, col+d.dCol {
			p, ok := board[model.PositionToKey(row, col)]
			if !ok {
				continue
			}
			if p.Color != byColor {
				break
			}
			if p.Type == pt {
				return true
			}
		}
	}
	return false
}

// FindKing returns the square of color's king, scanning in board order.
func FindKing(board model.Board, color model.Color) (model.Square, bool) {
	for _, sq := range board.Squares() {
		if p := board[sq]; p.Type == model.King && p.Color == color {
			return sq, true
		}
	}
	return "", false
}

// IsKingInCheck is false when color has no king on the board.
func IsKingInCheck(board model.Board, color model.Color) bool {
	kingSq, ok := FindKing(board, color)
	if !ok {
		return false
	}
	return IsSquareUnderAttack(board, kingSq, color.Opponent())
}
