package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"health-companion/internal/config"
	"health-companion/internal/core"
	"health-companion/internal/httpserver"
	"health-companion/internal/llm"
	"health-companion/internal/logging"
	"health-companion/internal/openfda"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logging.Warn(".env file not found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Env, cfg.LogLevel)

	if cfg.GroqAPIKey == "" {
		logging.Warn("GROQ_API_KEY is not set; AI-backed actions will return an instructional message")
	}

	lookup := openfda.NewClient(cfg.OpenFDABaseURL, nil)
	invoker := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	assistant := core.NewAssistant(lookup, invoker)
	srv := httpserver.NewServer(assistant)
	defer srv.Close()

	server := &http.Server{
		Handler:      srv.Router(),
		Addr:         cfg.Address + ":" + cfg.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // completion calls can be slow
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logging.Info("Server starting", "addr", server.Addr, "env", cfg.Env, "model", cfg.GroqModel)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	logging.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		if err := server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
		}
		return
	}

	logging.Info("Server exited gracefully")
}
