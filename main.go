// File: flightassist/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightassist/config"
	"flightassist/handlers"
	"flightassist/routes"
	"flightassist/services/assistant"
	"flightassist/services/flights"
	ai "flightassist/services/intelligence"
	"flightassist/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	utils.MarkStarted()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// External collaborators.
	flightClient := flights.NewClient()

	engine, err := ai.NewEngine(context.Background())
	if err != nil {
		// Recoverable: turns still run, analysis downgrades to fallback text.
		logger.Sugar().Warnf("main: summarization engine unavailable: %v", err)
	}
	analyzer := ai.NewAnalyzer(engine)

	// Assistant pipeline and service.
	pipeline, err := assistant.NewPipeline(flightClient, analyzer)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build assistant pipeline: %v", err)
	}
	assistantService := assistant.NewDefaultAssistantService(assistant.NewSessionStore(), pipeline)

	chatHandler := handlers.NewChatHandler(assistantService)
	handlerBundle := handlers.NewHandlerBundle(chatHandler)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
