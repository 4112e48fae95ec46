package service

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/variantchess-backend/internal/bot"
	"github.com/benbeisheim/variantchess-backend/internal/engine"
	"github.com/benbeisheim/variantchess-backend/internal/model"
	"github.com/benbeisheim/variantchess-backend/internal/ws"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // one writer per websocket at a time
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Game is one human-versus-bot session. It owns its board and last move; the
// engine itself keeps no state.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
	owner       string
	human       model.Color
	difficulty  bot.Difficulty
	bot         *bot.Bot
	botDelay    time.Duration
	botTimer    *time.Timer
	generation  int // bumped on reset; a pending bot reply for an older generation is dropped
	log         log.Interface
}

type Players struct {
	White model.ClientPlayer `json:"white"`
	Black model.ClientPlayer `json:"black"`
}

// GameState is what clients see. Version increases with every change so a
// client can drop stale frames.
type GameState struct {
	ID             string               `json:"id"`
	Version        int                  `json:"version"`
	Board          model.Board          `json:"board"`
	ToMove         model.Color          `json:"toMove"`
	IsCheck        bool                 `json:"isCheck"`
	Result         model.GameResult     `json:"result"`
	LastMove       *model.LastMove      `json:"lastMove"`
	CapturedPieces model.CapturedPieces `json:"capturedPieces"`
	Players        Players              `json:"players"`
	Difficulty     bot.Difficulty       `json:"difficulty"`
	BotThinking    bool                 `json:"botThinking"`
}

type GameOptions struct {
	Owner      string
	Human      model.Color
	Difficulty bot.Difficulty
	Bot        *bot.Bot
	BotDelay   time.Duration
}

func NewGame(id string, opts GameOptions) *Game {
	if opts.Bot == nil {
		opts.Bot = bot.New()
	}
	if !opts.Human.Valid() {
		opts.Human = model.White
	}
	g := &Game{
		ID:          id,
		connections: NewGameConnections(),
		owner:       opts.Owner,
		human:       opts.Human,
		difficulty:  opts.Difficulty,
		bot:         opts.Bot,
		botDelay:    opts.BotDelay,
		log:         log.WithField("game", id),
	}
	g.state = g.newGameState()
	return g
}

func (g *Game) newGameState() GameState {
	humanPlayer := model.ClientPlayer{ID: g.owner, Color: g.human}
	botPlayer := model.ClientPlayer{
		ID:         g.difficulty.Profile().Name,
		Color:      g.human.Opponent(),
		Bot:        true,
		Difficulty: string(g.difficulty),
	}
	players := Players{White: humanPlayer, Black: botPlayer}
	if g.human == model.Black {
		players = Players{White: botPlayer, Black: humanPlayer}
	}
	return GameState{
		ID:             g.ID,
		Board:          model.NewBoard(),
		ToMove:         model.White,
		Result:         model.GameResult{Status: model.StatusOngoing},
		CapturedPieces: model.NewCapturedPieces(),
		Players:        players,
		Difficulty:     g.difficulty,
	}
}

// Start kicks off the bot when it holds white.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scheduleBot()
}

// Finished reports whether the game reached checkmate or stalemate.
func (g *Game) Finished() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state.Result.Status.Terminal()
}

// GetState returns a snapshot that is safe to read after the lock is released.
func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() GameState {
	state := g.state
	state.Board = g.state.Board.Clone()
	if g.state.LastMove != nil {
		lm := *g.state.LastMove
		state.LastMove = &lm
	}
	state.CapturedPieces = model.CapturedPieces{
		White: append([]model.Piece{}, g.state.CapturedPieces.White...),
		Black: append([]model.Piece{}, g.state.CapturedPieces.Black...),
	}
	return state
}

// LegalMoves lists where the human's piece on sq may go. Squares holding no
// piece of the human's color, or any square once the game is over, yield none.
func (g *Game) LegalMoves(sq model.Square) ([]model.Square, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSquare, sq)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	piece, ok := g.state.Board.At(sq)
	if !ok || piece.Color != g.human || g.state.Result.Status.Terminal() {
		return []model.Square{}, nil
	}
	moves := engine.LegalMoves(g.state.Board, sq, g.state.LastMove)
	if moves == nil {
		moves = []model.Square{}
	}
	return moves, nil
}

func (g *Game) MakeMove(playerID string, move model.Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.log.WithField("from", move.From).WithField("to", move.To).Debug("human move")

	if playerID != g.owner {
		return ErrNotYourGame
	}
	if g.state.Result.Status.Terminal() {
		return ErrGameOver
	}
	if g.state.ToMove != g.human {
		return ErrNotYourTurn
	}
	if !move.From.Valid() || !move.To.Valid() {
		return fmt.Errorf("%w: %s-%s", ErrInvalidSquare, move.From, move.To)
	}
	if piece, ok := g.state.Board.At(move.From); !ok || piece.Color != g.human {
		return fmt.Errorf("%w: no piece of yours on %s", ErrIllegalMove, move.From)
	}
	if !engine.IsLegalMove(g.state.Board, move.From, move.To, g.state.LastMove) {
		return fmt.Errorf("%w: %s-%s", ErrIllegalMove, move.From, move.To)
	}

	g.play(move)
	g.scheduleBot()
	return nil
}

// Reset starts the game over with the same colors and difficulty.
func (g *Game) Reset(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if playerID != g.owner {
		return ErrNotYourGame
	}
	if g.botTimer != nil {
		g.botTimer.Stop()
		g.botTimer = nil
	}
	g.generation++
	version := g.state.Version
	g.state = g.newGameState()
	g.state.Version = version + 1
	g.log.Info("game reset")
	g.broadcast()
	g.scheduleBot()
	return nil
}

// play applies an already validated move for the side to move. Callers hold g.mu.
func (g *Game) play(move model.Move) {
	mover := g.state.ToMove
	out, ok := engine.ApplyMove(g.state.Board, move.From, move.To)
	if !ok {
		g.log.WithField("from", move.From).WithField("to", move.To).Error("apply move failed")
		return
	}
	if out.Captured != nil {
		g.state.CapturedPieces.Add(mover, *out.Captured)
	}
	lastMove := out.LastMove
	g.state.Board = out.Board
	g.state.LastMove = &lastMove
	g.state.ToMove = mover.Opponent()
	g.state.IsCheck = engine.IsKingInCheck(g.state.Board, g.state.ToMove)
	status := engine.Status(g.state.Board, g.state.ToMove, g.state.LastMove)
	g.state.Result = model.NewGameResult(status, g.state.ToMove, g.human)
	g.state.Version++

	g.log.WithFields(log.Fields{
		"color":    mover,
		"from":     move.From,
		"to":       move.To,
		"captured": out.Captured != nil,
		"promoted": out.Promoted,
		"status":   status,
	}).Info("move played")

	g.broadcast()
}

// scheduleBot queues the bot's reply when it is the bot's turn. Callers hold g.mu.
func (g *Game) scheduleBot() {
	if g.state.Result.Status.Terminal() || g.state.ToMove == g.human {
		return
	}
	if g.botDelay <= 0 {
		g.playBot()
		return
	}
	g.state.BotThinking = true
	generation := g.generation
	g.botTimer = time.AfterFunc(g.botDelay, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		if generation != g.generation {
			return
		}
		g.botTimer = nil
		g.playBot()
	})
}

func (g *Game) playBot() {
	g.state.BotThinking = false
	color := g.human.Opponent()
	move, ok := g.bot.SelectMove(g.state.Board, color, g.state.LastMove, g.difficulty)
	if !ok {
		status := engine.Status(g.state.Board, color, g.state.LastMove)
		g.state.Result = model.NewGameResult(status, color, g.human)
		g.state.Version++
		g.log.WithField("status", status).Info("bot has no move")
		g.broadcast()
		return
	}
	g.play(move)
}

func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	connID := fmt.Sprintf("%p", conn)
	entry := g.log.WithField("player", playerID).WithField("conn", connID)

	if playerID != g.owner {
		return ErrNotYourGame
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		g.connections.mu.Unlock()
		if err := conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"Connection already exists",
			),
		); err != nil {
			entry.WithError(err).Warn("failed to send close frame")
		}
		conn.Close()
		entry.Info("rejected duplicate connection")
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	entry.Info("registered connection")

	g.mu.Lock()
	defer g.mu.Unlock()
	g.broadcast()
	return nil
}

// UnregisterConnection drops conn and returns how many connections remain.
func (g *Game) UnregisterConnection(playerID string, conn Conn) int {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	// Only unregister if this is still the current connection
	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		delete(g.connections.connections, playerID)
		g.log.WithField("player", playerID).Info("unregistered connection")
	}
	return len(g.connections.connections)
}

// broadcast sends a snapshot of the state to every connection. Callers hold g.mu.
func (g *Game) broadcast() {
	state := g.snapshot()
	go g.broadcastState(state)
}

func (g *Game) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		g.log.WithError(err).Error("failed to marshal state")
		return
	}

	g.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		activeConnections[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := g.Send(conn, ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			g.log.WithError(err).WithField("player", playerID).Warn("failed to send state")
			g.connections.mu.Lock()
			if g.connections.connections[playerID] == conn {
				delete(g.connections.connections, playerID)
			}
			g.connections.mu.Unlock()
		}
	}
}

// Send writes one message to conn, serialized with broadcasts.
func (g *Game) Send(conn Conn, msg ws.Message) error {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	return conn.WriteJSON(msg)
}
