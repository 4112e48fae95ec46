package bot

import (
	"testing"

	. "gopkg.in/check.v1"

	"github.com/benbeisheim/variantchess-backend/internal/engine"
	"github.com/benbeisheim/variantchess-backend/internal/model"
)

func Test(t *testing.T) { TestingT(t) }

type BotSuite struct{}

var _ = Suite(&BotSuite{})

func first(n int) int { return 0 }

func last(n int) int { return n - 1 }

func piece(pt model.PieceType, color model.Color) model.Piece {
	return model.Piece{Type: pt, Color: color, HasMoved: true}
}

func (s *BotSuite) TestNoMoves(c *C) {
	board := model.Board{"a12": piece(model.Rook, model.Black)}
	b := New(WithPicker(first))
	for _, d := range Difficulties {
		_, ok := b.SelectMove(board, model.White, nil, d)
		c.Check(ok, Equals, false, Commentf("difficulty %s", d))
	}
}

func (s *BotSuite) TestEasyPicksFromAllMoves(c *C) {
	board := model.Board{
		"a1": piece(model.Rook, model.White),
		"a5": piece(model.Pawn, model.Black),
	}
	move, ok := New(WithPicker(first)).SelectMove(board, model.White, nil, Easy)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "a2"})
}

func (s *BotSuite) TestSingleCaptureIsAlwaysTaken(c *C) {
	board := model.Board{
		"a1": piece(model.Rook, model.White),
		"a5": piece(model.Pawn, model.Black),
	}
	for _, d := range []Difficulty{Medium, Hard, Pro} {
		for _, pick := range []Picker{first, last} {
			move, ok := New(WithPicker(pick)).SelectMove(board, model.White, nil, d)
			c.Assert(ok, Equals, true)
			c.Check(move, Equals, model.Move{From: "a1", To: "a5"}, Commentf("difficulty %s", d))
		}
	}
}

func (s *BotSuite) TestMediumTakesEnPassant(c *C) {
	board := model.Board{
		"c4": piece(model.Pawn, model.Black),
		"d4": piece(model.Pawn, model.White),
	}
	lastMove := &model.LastMove{From: "d2", To: "d4", MovedTwoSquares: true}
	move, ok := New(WithPicker(first)).SelectMove(board, model.Black, lastMove, Medium)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "c4", To: "d3"})
}

func (s *BotSuite) TestHardPrefersThreat(c *C) {
	board := model.Board{
		"a1": piece(model.Rook, model.White),
		"c5": piece(model.Queen, model.Black),
	}
	b := New(WithPicker(first))

	move, ok := b.SelectMove(board, model.White, nil, Medium)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "a2"})

	move, ok = b.SelectMove(board, model.White, nil, Hard)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "a5"})

	move, ok = New(WithPicker(last)).SelectMove(board, model.White, nil, Hard)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "c1"})
}

func (s *BotSuite) TestProTakesMostValuable(c *C) {
	board := model.Board{
		"a1": piece(model.Rook, model.White),
		"a4": piece(model.Pawn, model.Black),
		"f1": piece(model.Queen, model.Black),
	}
	move, ok := New(WithPicker(first)).SelectMove(board, model.White, nil, Medium)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "a4"})

	for _, pick := range []Picker{first, last} {
		move, ok = New(WithPicker(pick)).SelectMove(board, model.White, nil, Pro)
		c.Assert(ok, Equals, true)
		c.Check(move, Equals, model.Move{From: "a1", To: "f1"})
	}
}

func (s *BotSuite) TestProThreatensMostValuable(c *C) {
	board := model.Board{
		"a1": piece(model.Rook, model.White),
		"c5": piece(model.Queen, model.Black),
		"e3": piece(model.Pawn, model.Black),
	}
	move, ok := New(WithPicker(first)).SelectMove(board, model.White, nil, Pro)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "a5"})

	move, ok = New(WithPicker(last)).SelectMove(board, model.White, nil, Pro)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "c1"})
}

func (s *BotSuite) TestMovesAreLegal(c *C) {
	board := model.NewBoard()
	b := New()
	for _, d := range Difficulties {
		move, ok := b.SelectMove(board, model.White, nil, d)
		c.Assert(ok, Equals, true)
		c.Check(engine.IsLegalMove(board, move.From, move.To, nil), Equals, true, Commentf("difficulty %s", d))
	}
}

func (s *BotSuite) TestOutOfRangePickIsClamped(c *C) {
	board := model.Board{"a1": piece(model.Rook, model.White)}
	move, ok := New(WithPicker(func(n int) int { return n + 5 })).SelectMove(board, model.White, nil, Easy)
	c.Assert(ok, Equals, true)
	c.Check(move, Equals, model.Move{From: "a1", To: "a2"})
}

func (s *BotSuite) TestParseDifficulty(c *C) {
	d, err := ParseDifficulty(" Pro ")
	c.Assert(err, IsNil)
	c.Check(d, Equals, Pro)

	_, err = ParseDifficulty("grandmaster")
	c.Check(err, ErrorMatches, `unknown difficulty "grandmaster".*`)
}

func (s *BotSuite) TestProfiles(c *C) {
	profiles := Profiles()
	c.Assert(profiles, HasLen, 4)
	c.Check(profiles[0].Name, Equals, "EasyBot 1000")
	c.Check(profiles[0].Medal, Equals, "bronze")
	c.Check(profiles[3].Name, Equals, "ProBot 4000")
	c.Check(profiles[3].Rating, Equals, 2400)
	c.Check(Hard.Profile().Rating, Equals, 2000)
}
