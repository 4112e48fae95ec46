package model

import (
	"fmt"
	"strconv"
)

// BoardSize is the number of files and ranks.
const BoardSize = 12

// Square is a board key: file letter followed by a 1-indexed rank, e.g. "a1" or "l12".
type Square string

// Position is a 0-indexed display coordinate. Row 0 is rank 12.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func IsValidPosition(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// PositionToKey converts a display coordinate to a square key. It returns ""
// for coordinates off the board.
func PositionToKey(row, col int) Square {
	if !IsValidPosition(row, col) {
		return ""
	}
	return SquareAt(col, BoardSize-row)
}

// KeyToPosition is the inverse of PositionToKey.
func KeyToPosition(key Square) (Position, bool) {
	if len(key) < 2 {
		return Position{}, false
	}
	col := int(key[0]) - 'a'
	rank, err := strconv.Atoi(string(key[1:]))
	if err != nil {
		return Position{}, false
	}
	row := BoardSize - rank
	if !IsValidPosition(row, col) || SquareAt(col, rank) != key {
		return Position{}, false
	}
	return Position{Row: row, Col: col}, true
}

// SquareAt builds a key from a 0-indexed file and a 1-indexed rank.
func SquareAt(col, rank int) Square {
	return Square(fmt.Sprintf("%c%d", 'a'+col, rank))
}

func (s Square) Valid() bool {
	_, ok := KeyToPosition(s)
	return ok
}

// Index orders squares by file, then rank.
func (s Square) Index() (int, bool) {
	pos, ok := KeyToPosition(s)
	if !ok {
		return 0, false
	}
	return pos.Col*BoardSize + (BoardSize - 1 - pos.Row), true
}

func squareFromIndex(i int) Square {
	return SquareAt(i/BoardSize, i%BoardSize+1)
}

// Offset returns the square dRow/dCol away from p, or "" if that is off the board.
func (p Position) Offset(dRow, dCol int) Square {
	return PositionToKey(p.Row+dRow, p.Col+dCol)
}
