package service

import "errors"

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrGameExists    = errors.New("game already exists")
	ErrNotYourGame   = errors.New("not your game")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrGameOver      = errors.New("game is over")
	ErrIllegalMove   = errors.New("illegal move")
	ErrInvalidSquare = errors.New("invalid square")
	ErrInvalidColor  = errors.New("invalid color")
)
