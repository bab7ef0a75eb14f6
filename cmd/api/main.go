package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"resumeroast/resume-analyzer/internal/config"
	"resumeroast/resume-analyzer/internal/handlers"
	"resumeroast/resume-analyzer/internal/services"
	"resumeroast/resume-analyzer/internal/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize services
	pdfParser := services.NewPDFParserService()

	llm, err := newAnalyzer(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM client: %v", err)
	}
	log.Printf("✅ LLM client initialized (%s)", cfg.LLM.Provider)

	analyzerService := services.NewAnalyzerService(pdfParser, llm)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analyzerService, cfg.Server.RequestTimeout)
	log.Println("✅ Handlers initialized")

	// Create Fiber app. BodyLimit leaves headroom above the per-file cap so
	// the validator, not the transport, rejects oversized resumes.
	app := fiber.New(fiber.Config{
		AppName:      "Resume Roast & Rank API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    validation.MaxFileSize + 1024*1024,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Roast & Rank API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"GET /api/v1/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func newAnalyzer(cfg *config.Config) (services.Analyzer, error) {
	switch cfg.LLM.Provider {
	case config.ProviderOpenRouter:
		return services.NewOpenRouterService(cfg.LLM.OpenRouterAPIKey), nil
	default:
		return services.NewGeminiService(cfg.LLM.GeminiAPIKey)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
