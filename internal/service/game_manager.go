// service/game_manager.go
package service

import (
	"sync"

	"github.com/apex/log"
)

type GameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*Game),
	}
}

func (gm *GameManager) AddGame(game *Game) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[game.ID]; exists {
		return ErrGameExists
	}
	gm.games[game.ID] = game
	log.WithField("game", game.ID).WithField("games", len(gm.games)).Info("game created")
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return game, nil
}

func (gm *GameManager) RemoveGame(gameID string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; !exists {
		return
	}
	delete(gm.games, gameID)
	log.WithField("game", gameID).WithField("games", len(gm.games)).Info("game removed")
}
