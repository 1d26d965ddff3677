package main

import (
	"context"
	"fmt"

	"personal-task-planner/config"
	_ "personal-task-planner/docs" // Swagger docs
	"personal-task-planner/internal/httpserver"
	"personal-task-planner/internal/model"
	"personal-task-planner/internal/planner/usecase"
	"personal-task-planner/pkg/datemath"
	"personal-task-planner/pkg/gcalendar"
	"personal-task-planner/pkg/gemini"
	pkgLog "personal-task-planner/pkg/log"
)

// @title       Personal Task Planner API
// @description Task inference and priority scheduling engine: freeform parsing, field inference, and explainable daily plans.
// @version     1
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
	logger := pkgLog.Init(pkgLog.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Personal Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. DateMath parser
	dateMath, dtErr := datemath.NewParser(cfg.Planner.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Planner.Timezone, dtErr)
		dateMath, _ = datemath.NewParser("UTC")
	}

	// 4. External text-understanding service (optional)
	var textModel gemini.TextModel
	if cfg.LLM.APIKey != "" {
		client := gemini.NewClient(cfg.LLM.APIKey)
		client.SetModel(cfg.LLM.Model)
		if cfg.LLM.BaseURL != "" {
			client.SetAPIURL(cfg.LLM.BaseURL)
		}
		textModel = client
		logger.Infof(ctx, "External parser enabled, model=%s", client.Model())
	} else {
		logger.Warn(ctx, "LLM_API_KEY not set: freeform parsing will use local heuristics only")
	}

	// 5. Google Calendar client (optional)
	var commitments usecase.CommitmentSource
	if cfg.Calendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			commitments = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Planner UseCase
	plannerUC := usecase.New(logger, textModel, commitments, dateMath, cfg.Calendar.CalendarID)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: model.Environment(cfg.Environment.Name),
		RatePerMin:  cfg.HTTPServer.RatePerMin,
		PlannerUC:   plannerUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
