package controller

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/gofiber/websocket/v2"

	"github.com/benbeisheim/variantchess-backend/internal/model"
	"github.com/benbeisheim/variantchess-backend/internal/service"
	"github.com/benbeisheim/variantchess-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)
	entry := log.WithField("game", gameID).WithField("player", playerID)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		entry.WithError(err).Warn("failed to register connection")
		if err := c.WriteJSON(ws.NewError(err.Error())); err != nil {
			entry.WithError(err).Debug("failed to send registration error")
		}
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			entry.WithError(err).Debug("read loop ended")
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			entry.WithError(err).Warn("parse error")
			if err := wsc.gameService.Send(gameID, c, ws.NewError("malformed message")); err != nil {
				entry.WithError(err).Warn("failed to send error")
			}
			continue
		}
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			entry.WithError(err).WithField("type", msg.Type).Info("message rejected")
			if err := wsc.gameService.Send(gameID, c, ws.NewError(err.Error())); err != nil {
				entry.WithError(err).Warn("failed to send error")
			}
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("invalid move payload: %w", err)
		}
		return wsc.gameService.HandleMove(gameID, playerID, model.Move{
			From: model.Square(move.From),
			To:   model.Square(move.To),
		})
	case ws.MessageTypeReset:
		return wsc.gameService.ResetGame(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
