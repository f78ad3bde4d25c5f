// Command expense-tracker runs the interactive expense tracking session.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/wickant0902/expense-tracker/internal/cli"
	"github.com/wickant0902/expense-tracker/internal/config"
	"github.com/wickant0902/expense-tracker/internal/storage"
	"github.com/wickant0902/expense-tracker/pkg/logging"
)

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer db.Close()

	app := cli.New(db, os.Stdin, os.Stdout)
	if err := app.Run(context.Background()); err != nil {
		slog.Error("session ended with error", "error", err)
		os.Exit(1)
	}
}
