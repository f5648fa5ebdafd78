package app

import (
	"errors"
	"time"

	"github.com/PoignardAzur/marquee/internal/catalog"
	"github.com/PoignardAzur/marquee/internal/logging/events"
	"github.com/PoignardAzur/marquee/internal/task"
	"github.com/PoignardAzur/marquee/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	APIBase    string
	CatalogID  string
	Width      int
	Height     int
	FPS        int
	ShowFooter bool
	Verbose    bool
	Timeout    time.Duration
}

// completionBuffer is the number of fetch results that may queue up before
// background workers block.
const completionBuffer = 16

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client := catalog.NewClient(cfg.APIBase, cfg.Timeout)
	runner := task.NewRunner(completionBuffer)
	defer runner.Stop()
	model := ui.NewModel(client, cfg.CatalogID, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose, cfg.FPS, runner)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Stop("killed")
		return nil
	}
	if err != nil {
		events.App.Stop("error")
		return err
	}
	events.App.Stop("quit")
	return nil
}
