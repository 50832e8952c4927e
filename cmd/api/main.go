package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/realmforge/adventure-engine/internal/config"
	"github.com/realmforge/adventure-engine/internal/handlers"
	"github.com/realmforge/adventure-engine/internal/logger"
	"github.com/realmforge/adventure-engine/internal/services"
	"github.com/realmforge/adventure-engine/internal/storage"
	"github.com/realmforge/adventure-engine/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Adventure Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"llm_provider", cfg.LLMProvider,
		"model_name", cfg.ModelName,
		"storage", cfg.Storage)

	var store storage.Storage
	switch cfg.Storage {
	case config.StorageRedis:
		store = storage.NewRedisStorage(cfg.RedisURL, log)
	case config.StorageSQLite:
		store, err = storage.NewSQLiteStorage(cfg.SQLitePath, log)
		if err != nil {
			log.Error("Failed to open sqlite storage", "error", err)
			os.Exit(1)
		}
	case config.StorageMemory:
		store = storage.NewMemoryStorage()
		log.Warn("Using in-memory storage; games will not survive a restart")
	}

	storageCtx, storageCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer storageCancel()
	if err := store.Ping(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	var llmService services.LLMService
	switch cfg.LLMProvider {
	case config.ProviderAnthropic:
		llmService = services.NewAnthropicService(cfg.AnthropicAPIKey, cfg.ModelName, log)
	case config.ProviderOllama:
		llmService = services.NewOllamaService(cfg.OllamaURL, cfg.ModelName, log)
	case config.ProviderMock:
		llmService = services.NewMockLLM()
		log.Warn("Using mock LLM provider")
	}

	initCtx, initCancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer initCancel()
	if err := llmService.InitModel(initCtx, cfg.ModelName); err != nil {
		log.Error("Failed to initialize LLM model", "error", err, "model", cfg.ModelName)
		os.Exit(1)
	}

	processor := worker.NewTurnProcessor(store, llmService, log)

	mux := http.NewServeMux()
	mux.Handle("/health", handlers.NewHealthHandler(store, log))

	gameHandler := handlers.NewGameHandler(processor, store, log)
	turnHandler := handlers.NewTurnHandler(processor, log)
	mux.Handle("/v1/games", gameHandler)
	mux.HandleFunc("/v1/games/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			turnHandler.ServeHTTP(w, r)
			return
		}
		gameHandler.ServeHTTP(w, r)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
