package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"cinebook/internal/client"
	"cinebook/internal/orchestrator"
	"cinebook/internal/tui"
)

func main() {
	_ = godotenv.Load()

	serverURL := flag.String("server", envOrDefault("CINEBOOK_SERVER_URL", "http://localhost:4000"), "booking API base URL")
	pollInterval := flag.Duration("poll-interval", orchestrator.DefaultPollInterval, "payment status poll interval")
	maxPolls := flag.Int("max-polls", orchestrator.DefaultMaxPollAttempts, "payment status poll attempts before giving up")
	flag.Parse()

	c := client.New(*serverURL, nil)
	orch := orchestrator.New(c,
		orchestrator.WithPollInterval(*pollInterval),
		orchestrator.WithMaxPollAttempts(*maxPolls),
	)

	p := tea.NewProgram(tui.New(c, orch), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
