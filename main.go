package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmercaux/folio/internal/app"
	"github.com/lmercaux/folio/internal/config"
	"github.com/lmercaux/folio/internal/errmsg"
	"github.com/lmercaux/folio/internal/history"
	"github.com/lmercaux/folio/internal/icons"
	"github.com/lmercaux/folio/internal/locator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	icons.Init(cfg.IconStyle)

	store, err := history.Open()
	if err != nil {
		// Not fatal: the session keeps running with in-memory history.
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpHistoryLoad, err))
	}

	// folio [path] opens the given library directly.
	var startPath string
	if len(os.Args) > 1 {
		startPath = os.Args[1]
	}

	records := store.Merge(locator.Discover(cfg.ExtraSearchPaths...))

	m := app.New(cfg, store, records, startPath)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}
