package handler

import (
	"errors"
	"net/http"

	"word-guess/internal/game"
	"word-guess/internal/model"
	"word-guess/internal/service"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	games *service.GameService
}

func NewGameHandler(games *service.GameService) *GameHandler {
	return &GameHandler{games: games}
}

// POST /api/game/start
func (h *GameHandler) Start(c *gin.Context) {
	username := c.GetString("username")

	sess, err := h.games.StartGame(c.Request.Context(), username)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrDailyLimitExceeded):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":           "daily limit reached, you can play maximum 3 games per day",
				"remaining_games": 0,
			})
		case errors.Is(err, game.ErrNoWords):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no words available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, model.StartGameResponse{
		GameID:           sess.ID,
		Message:          "game started successfully",
		GuessesRemaining: game.MaxGuesses,
	})
}

// POST /api/game/guess
func (h *GameHandler) Guess(c *gin.Context) {
	username := c.GetString("username")

	var req model.GuessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id and word are required"})
		return
	}

	resp, err := h.games.SubmitGuess(c.Request.Context(), username, req.GameID, req.Word)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrInvalidGuessFormat):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrGameNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, game.ErrWrongOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized"})
		case errors.Is(err, game.ErrGameCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GET /api/game/status
func (h *GameHandler) Status(c *gin.Context) {
	username := c.GetString("username")

	status, err := h.games.DailyStatus(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
