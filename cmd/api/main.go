package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"cinebook/internal/app"
)

func main() {
	// A missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
