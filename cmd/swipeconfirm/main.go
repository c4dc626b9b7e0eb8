package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipeconfirm/core"
	"github.com/jask/swipeconfirm/internal/config"
	"github.com/jask/swipeconfirm/internal/logger"
	"github.com/jask/swipeconfirm/internal/slider"
)

func main() {
	configPath := flag.String("config", "", "path to config.toml (default $HOME/.config/swipeconfirm/config.toml)")
	logPath := flag.String("log", "", "write debug log to this file")
	writeConfig := flag.Bool("write-config", false, "write the default config file and exit")
	flag.Parse()

	if *writeConfig {
		path := *configPath
		if path == "" {
			path = config.Path()
		}
		if err := config.Write(path, config.Default()); err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Println(path)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}

	logs, closeLogs, logErr := logger.New(cfg.Log)
	if logErr != nil {
		// Run without a log file and show the problem in the status bar.
		logs, closeLogs, _ = logger.New(config.LogConfig{})
	}
	defer closeLogs()
	logs.Info("starting", "settle_delay", cfg.Gesture.SettleDelay, "orb_width", cfg.Gesture.OrbWidth)

	s := slider.New(slider.Options{
		Gesture:       cfg.GestureConfig(),
		MaxTrackWidth: cfg.UI.MaxTrackWidth,
		ArrowInterval: cfg.UI.ArrowInterval,
		Logger:        logs,
	})
	m := core.NewModel(s, core.NewKeyRegistry(core.DefaultKeyBindings()), logs)
	if logErr != nil {
		m = m.WithStartupError(logErr)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logs.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = closeLogs()
		os.Exit(1)
	}
}
