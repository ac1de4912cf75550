package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/openimg/internal/api"
	"github.com/llehouerou/openimg/internal/app"
	"github.com/llehouerou/openimg/internal/config"
	"github.com/llehouerou/openimg/internal/icons"
	"github.com/llehouerou/openimg/internal/notify"
	"github.com/llehouerou/openimg/internal/state"
	"github.com/llehouerou/openimg/internal/uploads"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "openimg")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer stateMgr.Close()

	apiCfg := cfg.GetAPIConfig()
	client := api.New(apiCfg.ClientID, apiCfg.BaseURL)

	var remote uploads.Remote
	if cfg.HasAPIConfig() {
		remote = client
	}

	var notifier notify.Notifier
	if *cfg.GetNotificationsConfig().Enabled {
		if n, err := notify.New(); err != nil {
			log.Printf("notifications unavailable: %v", err)
		} else {
			notifier = n
		}
	}

	m := app.New(app.Deps{
		Config:    cfg,
		State:     stateMgr,
		API:       client,
		Uploads:   uploads.New(stateMgr, remote),
		Clipboard: clipboard.WriteAll,
		Notifier:  notifier,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
