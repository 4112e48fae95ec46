package engine

import "github.com/benbeisheim/variantchess-backend/internal/model"

// Status evaluates the position for the side about to move.
func Status(board model.Board, toMove model.Color, lastMove *model.LastMove) model.GameStatus {
	if HasLegalMove(board, toMove, lastMove) {
		return model.StatusOngoing
	}
	if IsKingInCheck(board, toMove) {
		return model.StatusCheckmate
	}
	return model.StatusStalemate
}
