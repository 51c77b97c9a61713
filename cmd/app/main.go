package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"EduBot/internal/config"
	"EduBot/pkg/log"
	"EduBot/pkg/nlp"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	matcher := nlp.NewMatcher()
	extractor := nlp.NewExtractor()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithMiddleware(),
		config.WithGeminiClient(),
		config.WithChatRepository(),
		config.WithMatcher(matcher),
		config.WithExtractor(extractor),
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

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
