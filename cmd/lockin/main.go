package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lockin-app/lockin/internal/app"
	"github.com/lockin-app/lockin/internal/model"
	"github.com/lockin-app/lockin/internal/seed"
	"github.com/lockin-app/lockin/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lockin: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		return err
	}

	st := store.NewMemoryStore()
	if err := seed.Community(st); err != nil {
		return fmt.Errorf("seeding demo community: %w", err)
	}

	p := tea.NewProgram(app.New(cfg, st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running app: %w", err)
	}
	return nil
}
