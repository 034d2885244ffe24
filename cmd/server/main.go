package main

import (
	"log/slog"
	"os"

	"sahl-bank-api/internal/config"
	"sahl-bank-api/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Optional; the config falls back to built-in defaults.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogger(cfg)

	e := server.NewDefault(cfg)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("starting server",
		"addr", addr,
		"base_path", cfg.Server.BasePath,
		"environment", cfg.Server.Environment,
	)

	if err := e.Start(addr); err != nil {
		slog.Error("server stopped", "error", err.Error())
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
