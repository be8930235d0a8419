package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/dialogue-browser/internal/backend"
	"github.com/atomicstack/dialogue-browser/internal/dataset"
	"github.com/atomicstack/dialogue-browser/internal/filter"
	"github.com/atomicstack/dialogue-browser/internal/logging/events"
	"github.com/atomicstack/dialogue-browser/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DataPath       string
	Table          string
	DialogueColumn string
	Width          int
	Height         int
	ShowFooter     bool
	Watch          bool
	WatchInterval  time.Duration
	Initial        filter.Selection
}

func (cfg Config) loadOptions() dataset.Options {
	return dataset.Options{
		DialogueColumn: cfg.DialogueColumn,
		Table:          cfg.Table,
	}
}

// Loader returns a function that reads the configured dataset.
func (cfg Config) Loader() backend.Loader {
	opts := cfg.loadOptions()
	return func(path string) (*dataset.Collection, error) {
		return dataset.Open(path, opts)
	}
}

// Run loads the dataset and executes the Bubble Tea program.
func Run(cfg Config) error {
	load := cfg.Loader()
	collection, err := load(cfg.DataPath)
	if err != nil {
		events.Dataset.Failed(cfg.DataPath, err)
		return fmt.Errorf("load dataset: %w", err)
	}
	events.Dataset.Loaded(collection.Source(), collection.Len())

	var watcher *backend.Watcher
	if cfg.Watch {
		watcher = backend.NewWatcher(cfg.DataPath, cfg.WatchInterval, load)
		defer watcher.Stop()
	}

	model := ui.NewModel(collection, cfg.Initial, cfg.Width, cfg.Height, cfg.ShowFooter, watcher)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Quit("killed")
		return nil
	}
	return err
}
