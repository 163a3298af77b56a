// cmd/server/main.go
package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/openlinkage/openlinkage/internal/analyzer"
	"github.com/openlinkage/openlinkage/internal/config"
	"github.com/openlinkage/openlinkage/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	srv := server.New(*cfg, analyzer.New())
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
