package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"concierge/config"
	"concierge/database/auditlog"
	"concierge/handlers"
	"concierge/middleware"
	"concierge/routes"
	"concierge/services/concierge"
	"concierge/services/livecontext"
	"concierge/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Wire the pipeline: live context -> prompt -> model -> audit log.
	fetcher := livecontext.NewDefaultFetcher(config.AppConfig.TavilyAPIKey, logger)
	if fetcher.Search == nil {
		logger.Sugar().Warn("main: TAVILY_API_KEY not set, live context degrades to placeholders")
	}

	geminiClient, err := concierge.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	auditRepo, err := auditlog.NewMySQLRepository(
		config.AppConfig.MySQLURI,
		config.AppConfig.MySQLHost,
		config.AppConfig.MySQLUser,
		config.AppConfig.MySQLPassword,
		config.AppConfig.MySQLDB,
	)
	if err != nil {
		// Audit logging is best-effort; a bad DSN must not keep the API down.
		logger.Sugar().Warnf("main: audit log disabled: %v", err)
		auditRepo = nil
	}

	conciergeService := concierge.NewDefaultService(fetcher, geminiClient, repoOrNil(auditRepo), logger)
	conciergeHandler := handlers.NewConciergeHandler(conciergeService)

	handlerBundle := &handlers.HandlerBundle{
		PlanItineraryHandler: conciergeHandler.PlanItineraryHandler,
	}
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

// repoOrNil keeps a typed-nil *MySQLRepository from hiding inside the
// Repository interface.
func repoOrNil(repo *auditlog.MySQLRepository) auditlog.Repository {
	if repo == nil {
		return nil
	}
	return repo
}
