// Package engine implements the rules of the 12x12 variant: pseudo-legal move
// generation, attack detection, check filtering, game status and move
// application. Every function takes the board explicitly and never mutates it.
package engine

import "github.com/benbeisheim/variantchess-backend/internal/model"

type direction struct {
	dRow, dCol int
}

var (
	orthogonalDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs        = append(append([]direction{}, orthogonalDirs...), diagonalDirs...)
	knightOffsets  = []direction{{-2, -1}, {-2, 1}, {2, -1}, {2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}}
)

// PseudoLegalMoves returns the destinations the piece on from can reach by its
// movement pattern, without checking whether its own king is left in check.
// King moves are the exception: they are already filtered against attacked squares.
func PseudoLegalMoves(board model.Board, from model.Square, lastMove *model.LastMove) []model.Square {
	piece, ok := board.At(from)
	if !ok {
		return nil
	}
	pos, ok := model.KeyToPosition(from)
	if !ok {
		return nil
	}
	switch piece.Type {
	case model.Pawn:
		return pawnMoves(board, piece, pos, lastMove)
	case model.Knight:
		return stepMoves(board, piece, pos, knightOffsets)
	case model.Bishop:
		return slideMoves(board, piece, pos, diagonalDirs)
	case model.Rook:
		return slideMoves(board, piece, pos, orthogonalDirs)
	case model.Queen:
		return slideMoves(board, piece, pos, allDirs)
	case model.King:
		return kingMoves(board, piece, from, pos)
	case model.Sword:
		return jumpMoves(board, piece, pos, diagonalDirs)
	case model.Shield:
		return jumpMoves(board, piece, pos, orthogonalDirs)
	case model.Rider:
		return jumpMoves(board, piece, pos, allDirs)
	}
	return nil
}

func pawnMoves(board model.Board, piece model.Piece, pos model.Position, lastMove *model.LastMove) []model.Square {
	moves := []model.Square{}
	dir := piece.Color.PawnDirection()
	forwardRow := pos.Row - dir

	if oneForward := model.PositionToKey(forwardRow, pos.Col); oneForward != "" {
		if _, occupied := board[oneForward]; !occupied {
			moves = append(moves, oneForward)
			if !piece.HasMoved {
				twoForward := model.PositionToKey(pos.Row-2*dir, pos.Col)
				if _, occupied := board[twoForward]; twoForward != "" && !occupied {
					moves = append(moves, twoForward)
				}
			}
		}
	}

	for _, dCol := range []int{-1, 1} {
		target := model.PositionToKey(forwardRow, pos.Col+dCol)
		if target == "" {
			continue
		}
		if victim, ok := board[target]; ok && victim.Color != piece.Color {
			moves = append(moves, target)
		}
	}

	if target, ok := enPassantTarget(board, piece, pos, lastMove); ok {
		moves = append(moves, target)
	}
	return moves
}

// enPassantTarget reports the landing square when the pawn at pos may capture
// the enemy pawn that just advanced two squares beside it.
func enPassantTarget(board model.Board, piece model.Piece, pos model.Position, lastMove *model.LastMove) (model.Square, bool) {
	if piece.Type != model.Pawn || lastMove == nil || !lastMove.MovedTwoSquares {
		return "", false
	}
	victim, ok := board[lastMove.To]
	if !ok || victim.Type != model.Pawn || victim.Color == piece.Color {
		return "", false
	}
	victimPos, ok := model.KeyToPosition(lastMove.To)
	if !ok || victimPos.Row != pos.Row || abs(victimPos.Col-pos.Col) != 1 {
		return "", false
	}
	target := model.PositionToKey(pos.Row-piece.Color.PawnDirection(), victimPos.Col)
	if _, occupied := board[target]; target == "" || occupied {
		return "", false
	}
	return target, true
}

func stepMoves(board model.Board, piece model.Piece, pos model.Position, offsets []direction) []model.Square {
	moves := []model.Square{}
	for _, d := range offsets {
		target := pos.Offset(d.dRow, d.dCol)
		if target == "" {
			continue
		}
		if other, ok := board[target]; !ok || other.Color != piece.Color {
			moves = append(moves, target)
		}
	}
	return moves
}

func slideMoves(board model.Board, piece model.Piece, pos model.Position, dirs []direction) []model.Square {
	moves := []model.Square{}
	for _, d := range dirs {
		for row, col := pos.Row+d.dRow, pos.Col+d.dCol; model.IsValidPosition(row, col); row, col = row+d.dRow, col+d.dCol {
			target := model.PositionToKey(row, col)
			other, ok := board[target]
			if !ok {
				moves = append(moves, target)
				continue
			}
			if other.Color != piece.Color {
				moves = append(moves, target)
			}
			break
		}
	}
	return moves
}

// jumpMoves scans like a slider but passes over friendly pieces. The first
// enemy on a ray ends the scan, as a landing square.
func jumpMoves(board model.Board, piece model.Piece, pos model.Position, dirs []direction) []model.Square {
	moves := []model.Square{}
	for _, d := range dirs {
		for row, col := pos.Row+d.dRow, pos.Col+d.dCol; model.IsValidPosition(row, col); row, col = row+d.dRow, col+d.dCol {
			target := model.PositionToKey(row, col)
			other, ok := board[target]
			if !ok {
				moves = append(moves, target)
				continue
			}
			if other.Color != piece.Color {
				moves = append(moves, target)
				break
			}
		}
	}
	return moves
}

// kingMoves drops any adjacent square that would be attacked once the king stands on it.
func kingMoves(board model.Board, piece model.Piece, from model.Square, pos model.Position) []model.Square {
	candidates := stepMoves(board, piece, pos, allDirs)
	moves := make([]model.Square, 0, len(candidates))
	for _, target := range candidates {
		sim := board.Clone()
		delete(sim, from)
		sim[target] = piece
		if !IsSquareUnderAttack(sim, target, piece.Color.Opponent()) {
			moves = append(moves, target)
		}
	}
	return moves
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
