// File: trimly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trimly/config"
	"trimly/handlers"
	"trimly/middleware"
	"trimly/routes"
	"trimly/services/agent"
	"trimly/services/booking"
	"trimly/services/conversation"
	"trimly/services/intent"
	"trimly/services/payment"
	"trimly/store"
	"trimly/utils"

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
	router.Use(middleware.RateLimitMiddleware())

	// In-memory stores, constructed once per process.
	inventory := store.NewInventory(store.DefaultCatalog())
	bookingStore := store.NewBookings()
	orderStore := store.NewOrders()

	// LLM client; without an API key the extractor runs fallback-only.
	var llm intent.LLMClient
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := intent.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey, config.LLMTimeout())
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		llm = gemini
	} else {
		logger.Warn("main: GEMINI_API_KEY not set, intent extraction runs in deterministic fallback mode")
	}

	// services.
	bookingService := booking.NewService(inventory, bookingStore, logger)
	extractor := intent.NewExtractor(llm, inventory, logger)
	sessions := conversation.NewLog(config.AppConfig.ChatHistoryLimit)
	agentService := agent.NewService(extractor, bookingService, sessions, logger)

	klarnaClient := payment.NewKlarnaClient(
		config.AppConfig.KlarnaAPIURL,
		config.AppConfig.KlarnaUsername,
		config.AppConfig.KlarnaPassword,
		config.AppConfig.PublicURL,
		config.KlarnaTimeout(),
	)
	coordinator := payment.NewCoordinator(klarnaClient, orderStore, bookingService, config.AppConfig.PublicURL, logger)

	// handlers.
	handlerSet := &routes.Handlers{
		Chat:    handlers.NewChatHandler(agentService),
		Slots:   handlers.NewSlotHandler(inventory),
		Booking: handlers.NewBookingHandler(bookingService),
		Payment: handlers.NewPaymentHandler(coordinator, logger),
	}
	routes.RegisterRoutes(router, handlerSet)

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
