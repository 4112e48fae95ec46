package model

import (
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) { TestingT(t) }

type ModelSuite struct{}

var _ = Suite(&ModelSuite{})

func (s *ModelSuite) TestPositionToKeyCorners(c *C) {
	c.Assert(PositionToKey(0, 0), Equals, Square("a12"))
	c.Assert(PositionToKey(11, 0), Equals, Square("a1"))
	c.Assert(PositionToKey(11, 11), Equals, Square("l1"))
	c.Assert(PositionToKey(0, 11), Equals, Square("l12"))
	c.Assert(PositionToKey(-1, 0), Equals, Square(""))
	c.Assert(PositionToKey(0, 12), Equals, Square(""))
}

func (s *ModelSuite) TestKeyRoundTrip(c *C) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			key := PositionToKey(row, col)
			pos, ok := KeyToPosition(key)
			c.Assert(ok, Equals, true, Commentf("key %s", key))
			c.Assert(pos, Equals, Position{Row: row, Col: col})
		}
	}
}

func (s *ModelSuite) TestKeyToPositionRejects(c *C) {
	for _, key := range []Square{"", "a", "a0", "a13", "m1", "A1", "a01", "a1x", "1a"} {
		_, ok := KeyToPosition(key)
		c.Check(ok, Equals, false, Commentf("key %q", key))
		c.Check(key.Valid(), Equals, false)
	}
}

func (s *ModelSuite) TestNewBoardLayout(c *C) {
	board := NewBoard()
	c.Assert(board, HasLen, 48)

	for col, pt := range backRank {
		white := board[SquareAt(col, 1)]
		black := board[SquareAt(col, 12)]
		c.Check(white, Equals, Piece{Type: pt, Color: White})
		c.Check(black, Equals, Piece{Type: pt, Color: Black})
		c.Check(board[SquareAt(col, 2)], Equals, Piece{Type: Pawn, Color: White})
		c.Check(board[SquareAt(col, 11)], Equals, Piece{Type: Pawn, Color: Black})
	}
	c.Check(board["g1"].Type, Equals, King)
	c.Check(board["e12"].Type, Equals, Shield)
	c.Check(board["l1"].Type, Equals, Rider)
	c.Check(board["b12"].Type, Equals, Sword)

	_, ok := board.At("f6")
	c.Check(ok, Equals, false)
}

func (s *ModelSuite) TestCloneIsIndependent(c *C) {
	board := NewBoard()
	clone := board.Clone()
	delete(clone, "a1")
	clone["f6"] = Piece{Type: Queen, Color: Black}

	c.Check(board, HasLen, 48)
	_, ok := board.At("f6")
	c.Check(ok, Equals, false)
	_, ok = board.At("a1")
	c.Check(ok, Equals, true)
}

func (s *ModelSuite) TestSquaresOrder(c *C) {
	board := Board{
		"b1":  {Type: Rook, Color: White},
		"a12": {Type: King, Color: Black},
		"a2":  {Type: Pawn, Color: White},
		"a10": {Type: Pawn, Color: Black},
	}
	c.Assert(board.Squares(), DeepEquals, []Square{"a2", "a10", "a12", "b1"})
}

func (s *ModelSuite) TestPieceValues(c *C) {
	c.Check(Pawn.Value(), Equals, 1)
	c.Check(Knight.Value(), Equals, 3)
	c.Check(Bishop.Value(), Equals, 3)
	c.Check(Rook.Value(), Equals, 5)
	c.Check(Sword.Value(), Equals, 6)
	c.Check(Shield.Value(), Equals, 9)
	c.Check(Queen.Value(), Equals, 9)
	c.Check(Rider.Value(), Equals, 13)
	c.Check(King.Value(), Equals, 100)
	c.Check(PieceType("dragon").Value(), Equals, 0)
}

func (s *ModelSuite) TestGameResult(c *C) {
	ongoing := NewGameResult(StatusOngoing, White, White)
	c.Check(ongoing.Winner, IsNil)
	c.Check(ongoing.Outcome, Equals, OutcomeNone)

	mated := NewGameResult(StatusCheckmate, Black, White)
	c.Assert(mated.Winner, NotNil)
	c.Check(*mated.Winner, Equals, White)
	c.Check(mated.Outcome, Equals, OutcomeWin)

	lost := NewGameResult(StatusCheckmate, White, White)
	c.Check(*lost.Winner, Equals, Black)
	c.Check(lost.Outcome, Equals, OutcomeLoss)

	drawn := NewGameResult(StatusStalemate, Black, White)
	c.Check(drawn.Winner, IsNil)
	c.Check(drawn.Outcome, Equals, OutcomeDraw)
}

func (s *ModelSuite) TestCapturedPiecesAdd(c *C) {
	captured := NewCapturedPieces()
	captured.Add(White, Piece{Type: Pawn, Color: Black})
	captured.Add(Black, Piece{Type: Rider, Color: White})
	c.Check(captured.White, DeepEquals, []Piece{{Type: Pawn, Color: Black}})
	c.Check(captured.Black, DeepEquals, []Piece{{Type: Rider, Color: White}})
}
