package main

import (
	"os"
	"os/signal"
	"strings"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/benbeisheim/variantchess-backend/internal/config"
	"github.com/benbeisheim/variantchess-backend/internal/controller"
	"github.com/benbeisheim/variantchess-backend/internal/middleware"
	"github.com/benbeisheim/variantchess-backend/internal/service"
)

func newApp(cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger())

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager, service.ServiceOptions{
		BotDelay:          cfg.BotDelay,
		DefaultDifficulty: cfg.DefaultDifficulty,
	})
	controller.Register(app, gameService, splitOrigins(cfg.AllowOrigins))
	return app
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func waitShutdown(app *fiber.App, sigint <-chan os.Signal, idleConnsClosed chan<- struct{}) {
	defer close(idleConnsClosed)

	<-sigint
	log.Info("received shutdown signal")

	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("HTTP server shutdown")
	}
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.SetupLogging(os.Stderr); err != nil {
		log.WithError(err).Fatal("setup logging")
	}

	app := newApp(cfg)

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, os.Interrupt)
	defer signal.Stop(sigint)

	idleConnsClosed := make(chan struct{})
	go waitShutdown(app, sigint, idleConnsClosed)

	log.WithField("addr", cfg.Addr).Info("listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.WithError(err).Fatal("HTTP server end")
	}
	<-idleConnsClosed
}
