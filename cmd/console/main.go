package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"task-tracker/config"
	"task-tracker/internal/task/delivery/console"
	"task-tracker/internal/task/repository/csvfile"
	"task-tracker/internal/task/usecase"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger. stdout belongs to the menu.
	logger := log.Init(consoleLogConfig(cfg.Logger))
	ctx := context.Background()

	// 3. Clock
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to Local: %v", cfg.Timezone, err)
		dates, _ = datemath.NewParser("Local")
	}
	logger.Infof(ctx, "Timezone: %s", dates.Location())
	today := func() time.Time { return dates.Today(time.Now()) }

	// 4. Task domain
	repo := csvfile.New(cfg.Storage.CSVPath, logger)
	uc := usecase.New(logger, repo, nil, "")
	h := console.New(logger, uc, os.Stdin, os.Stdout, today)

	// 5. Run
	if err := h.Run(); err != nil {
		logger.Errorf(ctx, "console: %v", err)
		os.Exit(1)
	}
}

// consoleLogConfig logs to stderr with the production preset, so warnings
// carry no stack traces, at logger.console_level.
func consoleLogConfig(cfg config.LoggerConfig) log.ZapConfig {
	return log.ZapConfig{
		Level:        cfg.ConsoleLevel,
		Mode:         log.ModeProduction,
		Encoding:     cfg.Encoding,
		ColorEnabled: cfg.ColorEnabled,
		OutputPaths:  []string{"stderr"},
	}
}
