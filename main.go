package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"govdocgo/internal/api"
	"govdocgo/internal/config"
	"govdocgo/internal/extract"
	"govdocgo/internal/service/ai"
	"govdocgo/internal/service/analyzer"
	"govdocgo/internal/service/chat"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("GOVDOC_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Gemini.APIKey == "" {
		logger.Fatal("GEMINI_API_KEY is missing in environment variables")
	}

	backend, err := ai.NewClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
	if err != nil {
		logger.Fatal("init generative backend", zap.Error(err))
	}

	hwp := extract.NewHWPExtractor(
		cfg.Extract.HWPTool,
		cfg.Extract.TempDir,
		time.Duration(cfg.Extract.TimeoutSeconds)*time.Second,
		logger,
	)
	normalizer := extract.NewNormalizer(hwp, logger)
	analysisService := analyzer.NewService(normalizer, backend, logger)
	chatService := chat.NewService(backend, logger)
	handlers := api.NewHandler(analysisService, chatService, cfg.BasicConfig.StaticDir, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(api.RequestID())
	router.Use(api.RequestLogger(logger))
	router.Use(api.BodyLimit(cfg.BasicConfig.MaxBodyMB << 20))
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	if addr == "" {
		addr = ":3001"
	}
	logger.Info("server starting",
		zap.String("addr", addr),
		zap.String("model", cfg.Gemini.Model),
		zap.String("hwp_tool", cfg.Extract.HWPTool),
	)

	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
