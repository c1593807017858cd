package main

import (
	"flag"
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/sims/threshold"
	"lifegrid/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = "32"
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append per-generation summaries to this file")
	flag.Parse()

	if err := run(cfg, *logPath); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, logPath string) error {
	sess := threshold.New(threshold.DefaultSettings())
	sess.SetWorkers(cfg.Workers)
	var logger *log.Logger
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f, "life: ", log.LstdFlags)
		sess.SetLogger(logger)
	}
	if err := sess.Apply(cfg.Fields()); err != nil {
		return err
	}
	if logger != nil {
		logger.Printf("settings %v", sess.Parameters().Fields())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return term.New(screen, sess, cfg.Seed).Run()
}
