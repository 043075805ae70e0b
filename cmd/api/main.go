package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-tracker/config"
	_ "task-tracker/docs" // Swagger docs
	"task-tracker/internal/httpserver"
	"task-tracker/internal/reminder"
	"task-tracker/internal/task/repository/csvfile"
	"task-tracker/internal/task/usecase"
	"task-tracker/pkg/datemath"
	"task-tracker/pkg/gcalendar"
	"task-tracker/pkg/log"
)

// @title       Task Tracker API
// @description Add tasks with a priority and a deadline, list them with urgency suggestions, and export them.
// @version     1.0
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task file: %s", cfg.Storage.CSVPath)

	// 3. Clock
	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to Local: %v", cfg.Timezone, err)
		dates, _ = datemath.NewParser("Local")
	}
	logger.Infof(ctx, "Timezone: %s", dates.Location())
	today := func() time.Time { return dates.Today(time.Now()) }

	// 4. Google Calendar client (optional)
	var calendarClient usecase.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		gc, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendarClient = gc
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task domain
	repo := csvfile.New(cfg.Storage.CSVPath, logger)
	taskUC := usecase.New(logger, repo, calendarClient, cfg.GoogleCalendar.CalendarID)

	// 6. Reminder digest (optional)
	if cfg.Reminder.Enabled {
		sched := reminder.New(logger, taskUC, today)
		if err := sched.Start(ctx, cfg.Reminder.Schedule); err != nil {
			logger.Error(ctx, "Failed to start reminder: ", err)
			return
		}
		defer sched.Stop()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
		TaskUseCase:     taskUC,
		Today:           today,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
