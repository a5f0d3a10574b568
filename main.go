package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"jsonpeek/app"
	peeklog "jsonpeek/utils/log"
)

const version = "0.2.0"

var cli struct {
	Repair   bool             `help:"Start with the repair pass enabled." default:"true" negatable:""`
	Debounce time.Duration    `help:"Delay between the last keystroke and re-parsing." default:"150ms"`
	Debug    bool             `help:"Force debug logging." short:"d"`
	Version  kong.VersionFlag `help:"Show version and exit." short:"v"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("jsonpeek"),
		kong.Description("Paste broken JSON or JSON Lines, repair it, and browse it as a tree."),
		kong.UsageOnError(),
		kong.Vars{"version": "jsonpeek " + version},
	)

	peeklog.Init("jsonpeek")
	defer peeklog.Sync()
	if cli.Debug {
		peeklog.SetLevel(zap.DebugLevel)
	}

	opts := app.Options{
		Version:  version,
		Repair:   cli.Repair,
		Debounce: cli.Debounce,
	}
	app.Init(opts)

	p := tea.NewProgram(app.InitialModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "jsonpeek: %v\n", err)
		os.Exit(1)
	}
}
