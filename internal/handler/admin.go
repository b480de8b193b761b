package handler

import (
	"errors"
	"net/http"
	"time"

	"word-guess/internal/game"
	"word-guess/internal/model"
	"word-guess/internal/service"
	"word-guess/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the reporting and word-inventory endpoints. All of
// its routes sit behind JWTAuth + AdminOnly.
type AdminHandler struct {
	reports *service.ReportService
	words   *service.WordService
}

func NewAdminHandler(reports *service.ReportService, words *service.WordService) *AdminHandler {
	return &AdminHandler{reports: reports, words: words}
}

// GET /api/admin/daily-report?date=YYYY-MM-DD (defaults to today, UTC)
func (h *AdminHandler) DailyReport(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = game.DateOf(time.Now())
	}
	if !game.ValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	report, err := h.reports.DailyReport(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/admin/user-report?username=...
func (h *AdminHandler) UserReport(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username parameter is required"})
		return
	}

	report, err := h.reports.UserReport(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// POST /api/admin/words
func (h *AdminHandler) AddWord(c *gin.Context) {
	var req model.AddWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "word is required"})
		return
	}

	word, err := h.words.Add(c.Request.Context(), req.Word)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrInvalidGuessFormat), errors.Is(err, game.ErrWordExists):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "word " + word + " added successfully"})
}

// GET /api/admin/words
func (h *AdminHandler) ListWords(c *gin.Context) {
	words, err := h.words.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if words == nil {
		words = []string{}
	}
	c.JSON(http.StatusOK, model.WordListResponse{Words: words, Count: len(words)})
}
