package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-todo-backend/config"
	_ "smart-todo-backend/docs" // Swagger docs
	"smart-todo-backend/internal/httpserver"
	"smart-todo-backend/internal/parser"
	taskHTTP "smart-todo-backend/internal/task/delivery/http"
	sqliteRepo "smart-todo-backend/internal/task/repository/sqlite"
	"smart-todo-backend/internal/task/usecase"
	"smart-todo-backend/pkg/anthropic"
	"smart-todo-backend/pkg/log"
)

// @title       Smart Todo API
// @description Task management backend with natural language parsing (LLM-backed with a rule-based fallback).
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
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqliteRepo.InitDB(cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize database: %v", err)
		return
	}
	defer db.Close()

	taskRepo := sqliteRepo.New(logger, db)

	// 4. Natural language parser. Without an API key the parser runs on the
	// rule-based fallback alone; the decision is made once here.
	var llmClient *anthropic.Client
	if cfg.Anthropic.APIKey != "" {
		llmClient = anthropic.NewClient(cfg.Anthropic.APIKey)
		llmClient.SetModel(cfg.Anthropic.Model)
		llmClient.SetTimeout(cfg.Anthropic.Timeout)
		logger.Infof(ctx, "Anthropic client initialized, model=%s", llmClient.Model())
	} else {
		logger.Warn(ctx, "No Anthropic API key provided, using rule-based fallback parser only")
	}
	taskParser := parser.New(logger, llmClient)

	// 5. Task domain
	taskUC := usecase.New(logger, taskParser, taskRepo)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 6. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ParseRatePerMin: cfg.RateLimit.ParsePerMin,
		TaskHandler:     taskHandler,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
