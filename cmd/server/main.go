package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"word-guess/internal/config"
	"word-guess/internal/handler"
	"word-guess/internal/logger"
	"word-guess/internal/middleware"
	"word-guess/internal/service"
	"word-guess/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.JWTSecret = []byte(cfg.Auth.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	st := store.NewGormStore(db)
	if err := st.AutoMigrate(); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	wordSvc := service.NewWordService(st)
	if err := wordSvc.Seed(context.Background()); err != nil {
		slog.Error("word seed failed", "err", err)
		os.Exit(1)
	}

	gameSvc := service.NewGameService(st, wordSvc)
	reportSvc := service.NewReportService(st, st)
	authSvc := service.NewAuthService(st)

	authH := handler.NewAuthHandler(authSvc)
	gameH := handler.NewGameHandler(gameSvc)
	adminH := handler.NewAdminHandler(reportSvc, wordSvc)

	limiter := middleware.NewRateLimiter(cfg.Game.RateLimitRPS, cfg.Game.RateLimitBurst)
	startTime := time.Now()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/healthz", func(c *gin.Context) {
		words, _ := wordSvc.List(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"words_loaded": len(words),
			"uptime":       time.Since(startTime).Round(time.Second).String(),
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	auth := r.Group("/api/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)

	gameAPI := r.Group("/api/game", middleware.JWTAuth())
	gameAPI.POST("/start", limiter.Middleware(), gameH.Start)
	gameAPI.POST("/guess", limiter.Middleware(), gameH.Guess)
	gameAPI.GET("/status", gameH.Status)

	admin := r.Group("/api/admin", middleware.JWTAuth(), middleware.AdminOnly())
	admin.GET("/daily-report", adminH.DailyReport)
	admin.GET("/user-report", adminH.UserReport)
	admin.POST("/words", adminH.AddWord)
	admin.GET("/words", adminH.ListWords)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
