package controller

import (
	"errors"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/variantchess-backend/internal/model"
	"github.com/benbeisheim/variantchess-backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

type createGameRequest struct {
	Color      string `json:"color"`
	Difficulty string `json:"difficulty"`
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (gc *GameController) ListBots(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.Bots())
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
	}

	gameID, color, err := gc.gameService.CreateGame(playerID, req.Color, req.Difficulty)
	if err != nil {
		// bad color or difficulty
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(gameState)
}

func (gc *GameController) LegalMoves(c *fiber.Ctx) error {
	square := model.Square(c.Params("square"))
	moves, err := gc.gameService.LegalMoves(c.Params("gameId"), square)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	move := model.Move{From: model.Square(req.From), To: model.Square(req.To)}
	if err := gc.gameService.HandleMove(gameID, playerID, move); err != nil {
		return respondError(c, err)
	}
	return gc.GetGameState(c)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.ResetGame(gameID, playerID); err != nil {
		return respondError(c, err)
	}
	return gc.GetGameState(c)
}

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotYourGame):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotYourTurn), errors.Is(err, service.ErrGameOver):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrIllegalMove),
		errors.Is(err, service.ErrInvalidSquare),
		errors.Is(err, service.ErrInvalidColor):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
