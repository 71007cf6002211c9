package main

import (
	"LogoVision/internal/config"
	"LogoVision/pkg/log"
	"LogoVision/pkg/vision"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		// logger reads LOG_LEVEL and APP_ENV, so it is created after .env
		log.NewLogger().Fatalf("Error loading .env file: %v", err)
	}
	logger := log.NewLogger()

	env, err := config.LoadEnv()
	if err != nil {
		logger.Fatal(err)
	}

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	visionClient, err := vision.New(initCtx, vision.Config{
		APIKey:          env.VisionAPIKey,
		CredentialsFile: env.CredentialsFile,
		Endpoint:        env.VisionEndpoint,
	})
	cancel()
	if err != nil {
		logger.Fatalf("Error creating vision client: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithUtils(),
		config.WithVisionClient(visionClient),
		config.WithEnv(env),
	)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.WithField("port", env.AppPort).Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	if err := server.Shutdown(10 * time.Second); err != nil {
		logger.Errorf("Error shutting down server: %v", err)
	}
}
