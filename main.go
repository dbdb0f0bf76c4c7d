package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okrete/kinema/internal/logging"
	"github.com/okrete/kinema/internal/scene"
	"github.com/okrete/kinema/internal/ui"
)

func main() {
	logPath := flag.String("log", "", "write JSON diagnostics to this file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: kinema [flags] [scene.yaml]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := scene.Default()
	if flag.NArg() > 0 {
		var err error
		cfg, err = scene.Load(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	log := logging.Discard()
	if *logPath != "" {
		l, err := logging.Setup(*logPath, slog.LevelInfo)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log = l
	}

	sc, err := scene.Compile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("scene compiled",
		"title", sc.Title,
		"fps", sc.FPS,
		"elements", len(sc.Binders),
		"bookmarks", sc.Stops.Len())

	p := tea.NewProgram(ui.New(sc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("playground exited")
}
