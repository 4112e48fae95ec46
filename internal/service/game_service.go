package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/benbeisheim/variantchess-backend/internal/bot"
	"github.com/benbeisheim/variantchess-backend/internal/model"
	"github.com/benbeisheim/variantchess-backend/internal/ws"
)

type GameService struct {
	gameManager       *GameManager
	bot               *bot.Bot
	botDelay          time.Duration
	defaultDifficulty bot.Difficulty
}

type ServiceOptions struct {
	Bot               *bot.Bot
	BotDelay          time.Duration
	DefaultDifficulty bot.Difficulty
}

func NewGameService(gameManager *GameManager, opts ServiceOptions) *GameService {
	if opts.Bot == nil {
		opts.Bot = bot.New()
	}
	if opts.DefaultDifficulty == "" {
		opts.DefaultDifficulty = bot.Easy
	}
	return &GameService{
		gameManager:       gameManager,
		bot:               opts.Bot,
		botDelay:          opts.BotDelay,
		defaultDifficulty: opts.DefaultDifficulty,
	}
}

// CreateGame opens a session for playerID. Empty color means white and empty
// difficulty means the configured default.
func (gs *GameService) CreateGame(playerID, color, difficulty string) (string, model.Color, error) {
	human := model.White
	if c := model.Color(strings.ToLower(strings.TrimSpace(color))); c != "" {
		if !c.Valid() {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidColor, color)
		}
		human = c
	}
	level := gs.defaultDifficulty
	if difficulty != "" {
		d, err := bot.ParseDifficulty(difficulty)
		if err != nil {
			return "", "", err
		}
		level = d
	}

	gameID := uuid.New().String()
	game := NewGame(gameID, GameOptions{
		Owner:      playerID,
		Human:      human,
		Difficulty: level,
		Bot:        gs.bot,
		BotDelay:   gs.botDelay,
	})
	if err := gs.gameManager.AddGame(game); err != nil {
		return "", "", fmt.Errorf("failed to create game: %w", err)
	}
	game.Start()
	return gameID, human, nil
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) LegalMoves(gameID string, square model.Square) ([]model.Square, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(square)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.Move) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.MakeMove(playerID, move)
}

func (gs *GameService) ResetGame(gameID string, playerID string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Reset(playerID)
}

func (gs *GameService) Bots() []model.BotProfile {
	return bot.Profiles()
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn Conn) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	// a finished game is dropped once nobody is watching it
	if remaining := game.UnregisterConnection(playerID, conn); remaining == 0 && game.Finished() {
		gs.gameManager.RemoveGame(gameID)
	}
}

// Send delivers msg on conn through the game's writer lock.
func (gs *GameService) Send(gameID string, conn Conn, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return conn.WriteJSON(msg)
	}
	return game.Send(conn, msg)
}
