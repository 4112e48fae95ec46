package model

// Move is a ply described only by its endpoints. Captures, en passant removal
// and promotion are derived when the move is applied.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// LastMove is the most recent ply, kept for en passant.
type LastMove struct {
	From            Square `json:"from"`
	To              Square `json:"to"`
	MovedTwoSquares bool   `json:"movedTwoSquares"`
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func NewCapturedPieces() CapturedPieces {
	return CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
}

// Add records a piece taken by the given side.
func (c *CapturedPieces) Add(by Color, p Piece) {
	switch by {
	case White:
		c.White = append(c.White, p)
	case Black:
		c.Black = append(c.Black, p)
	}
}
