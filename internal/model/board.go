package model

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
	Sword  PieceType = "sword"
	Shield PieceType = "shield"
	Rider  PieceType = "rider"
)

// PieceTypes lists every piece type the engine knows about.
var PieceTypes = []PieceType{Pawn, Knight, Bishop, Rook, Queen, King, Sword, Shield, Rider}

// Value is the material weight the bot uses to rank captures and threats.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Sword:
		return 6
	case Shield, Queen:
		return 9
	case Rider:
		return 13
	case King:
		return 100
	}
	return 0
}

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

// PawnDirection is the row delta sign for a pawn of this color. White pawns
// start near the bottom of the display, so they advance toward row 0.
func (c Color) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

type Piece struct {
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	HasMoved bool      `json:"hasMoved"`
}

// Board is a sparse mapping of occupied squares. A missing key is an empty square.
type Board map[Square]Piece

// At returns the piece on sq, if any.
func (b Board) At(sq Square) (Piece, bool) {
	p, ok := b[sq]
	return p, ok
}

// Clone returns an independent copy; pieces are stored by value.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for sq, p := range b {
		out[sq] = p
	}
	return out
}

// Squares returns the occupied squares in a stable order (file, then rank).
func (b Board) Squares() []Square {
	idx := make([]int, 0, len(b))
	for _, sq := range maps.Keys(b) {
		if i, ok := sq.Index(); ok {
			idx = append(idx, i)
		}
	}
	slices.Sort(idx)
	out := make([]Square, len(idx))
	for n, i := range idx {
		out[n] = squareFromIndex(i)
	}
	return out
}

// backRank maps a file to the piece that starts there on each side's home rank.
var backRank = [BoardSize]PieceType{
	Rook, Sword, Bishop, Knight, Shield, Queen, King, Knight, Sword, Bishop, Rook, Rider,
}

func NewBoard() Board {
	board := Board{}
	for col := 0; col < BoardSize; col++ {
		board[SquareAt(col, 1)] = Piece{Type: backRank[col], Color: White}
		board[SquareAt(col, 2)] = Piece{Type: Pawn, Color: White}
		board[SquareAt(col, BoardSize-1)] = Piece{Type: Pawn, Color: Black}
		board[SquareAt(col, BoardSize)] = Piece{Type: backRank[col], Color: Black}
	}
	return board
}
