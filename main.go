package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fmuoria/resume-analyzer/internal/agent"
	"github.com/fmuoria/resume-analyzer/internal/api"
	"github.com/fmuoria/resume-analyzer/internal/config"
	"github.com/fmuoria/resume-analyzer/internal/logger"
	"github.com/fmuoria/resume-analyzer/internal/similarity"
	"github.com/fmuoria/resume-analyzer/internal/skills"
)

func main() {
	// .env is optional; environment variables win over the config file
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	vocabulary, err := skills.LoadVocabulary(cfg.SkillsPath)
	if err != nil {
		zlog.Fatal("failed to load skills vocabulary", zap.Error(err))
	}

	ctx := context.Background()
	engine, err := similarity.NewEngine(ctx, cfg.SimilarityStrategy, cfg.GeminiAPIKey, cfg.EmbeddingModel, zlog)
	if err != nil {
		zlog.Fatal("failed to configure similarity engine", zap.Error(err))
	}

	analyzer := agent.NewAnalyzer(engine, vocabulary, cfg.UploadsDir, zlog)
	server := api.NewServer(analyzer, zlog)

	addr := fmt.Sprintf(":%d", cfg.Port)
	zlog.Info("starting resume analyzer",
		zap.String("addr", addr),
		zap.String("similarity_strategy", cfg.SimilarityStrategy))

	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		zlog.Fatal("server failed", zap.Error(err))
	}
}
