package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ismaell/regdel/core"
	"github.com/ismaell/regdel/core/views"
	"github.com/ismaell/regdel/internal/config"
	"github.com/ismaell/regdel/internal/ledger"
	"github.com/ismaell/regdel/pkg/logger"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <ledger-file>\n", os.Args[0])
		os.Exit(1)
	}
	file := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, sync, err := logger.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer sync()

	client := ledger.NewClient(file, ledger.ExecRunner{Binary: cfg.Engine.Binary}, zlog)
	client.Options = cfg.Engine.Options

	root, err := views.NewAccountsView(client)
	if err != nil {
		log.Fatalf("%v", err)
	}

	balance := func(account string) (core.View, error) {
		return views.NewBalanceView(client, account)
	}
	m := core.NewModel(root, core.NewKeyRegistry(core.DefaultKeyBindings()), balance)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if fm, ok := final.(core.Model); ok && fm.Fatal() != nil {
		fmt.Fprintln(os.Stderr, fm.Fatal())
		os.Exit(1)
	}
}
