package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"sport-planner/internal/config"
	"sport-planner/internal/handler"
	"sport-planner/internal/logger"
	"sport-planner/internal/service"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}

	store := service.NewStore(db)
	if err := store.Migrate(context.Background()); err != nil {
		slog.Error("store init failed", "err", err)
		os.Exit(1)
	}

	var advisor service.Advisor
	switch cfg.Coach.Mode {
	case "live":
		ai, err := service.NewAIService(cfg.Coach.BaseURL, cfg.Coach.APIKey, cfg.Coach.Model)
		if err != nil {
			slog.Error("coach gateway init failed", "err", err)
			os.Exit(1)
		}
		advisor = ai
		slog.Info("coach gateway ready", "mode", "live", "base_url", cfg.Coach.BaseURL, "model", cfg.Coach.Model)
	default:
		advisor = service.NewCannedAdvisor()
		slog.Info("coach gateway ready", "mode", "canned")
	}

	r := handler.NewRouter(store, advisor)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
