package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workoutlog/internal/app/server/api"
	"workoutlog/internal/app/server/config"
	"workoutlog/internal/domain/workout"
	"workoutlog/internal/infrastructure/storage/sqlite"
	"workoutlog/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	storage, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer storage.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := sqlite.NewWorkoutRepository(storage.DB(), log)
	if err := workout.EnsureSeeded(ctx, repo); err != nil {
		log.Error("failed to seed storage", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.Server.RunAddress,
		Handler:      api.New(repo, log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", "address", cfg.Server.RunAddress, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
