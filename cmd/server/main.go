package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/homelabster/internal/config"
	"github.com/iudanet/homelabster/internal/server"
	"github.com/iudanet/homelabster/internal/server/auth"
	"github.com/iudanet/homelabster/internal/server/storage/imagefs"
	"github.com/iudanet/homelabster/internal/server/storage/jsonfile"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Load()

	if cfg.InsecureSecret() {
		// Известное слабое место: без JWT_SECRET токены подписываются
		// общеизвестным значением. Работаем, но громко предупреждаем.
		logger.Warn("JWT_SECRET is not set, using insecure default secret; " +
			"set JWT_SECRET before exposing the server")
	}

	store, err := jsonfile.New(cfg.DataDir, "")
	if err != nil {
		return fmt.Errorf("failed to init document store: %w", err)
	}

	images, err := imagefs.New(cfg.ImagesDir)
	if err != nil {
		return fmt.Errorf("failed to init image store: %w", err)
	}

	authService := auth.NewService(cfg.JWTSecret, cfg.AdminUsername, cfg.AdminPassword)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(logger, cfg, store, images, authService, Version)
	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("Homelabster Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
