package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/handler"
	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/repository"
	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/cache"
	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/metrics"
	"github.com/johnquangdev/smart-voice-assistant/internal/infrastructure/storage"
	"github.com/johnquangdev/smart-voice-assistant/internal/usecase/assistant"
	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
	"github.com/johnquangdev/smart-voice-assistant/pkg/nlp"
	pkgvalidator "github.com/johnquangdev/smart-voice-assistant/pkg/validator"
)

// @title           Smart Voice Assistant API
// @version         1.0
// @description     Extracts action items, meeting dates and key points from transcribed speech

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.HideBanner = true
	e.HidePort = false

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(reg)

	e.Use(middleware.RequestID())
	e.Use(httpmw.RequestContext())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(httpmw.EchoMetrics(appMetrics))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		log.Println("🔄 Running embedded migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	// Initialize text analyzer
	log.Printf("🧠 Initializing %s analyzer...", cfg.NLP.Backend)
	analyzer, err := newAnalyzer(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize analyzer: %v", err)
	}

	if cfg.NLP.CacheEnabled {
		store, closeStore, err := newAnalysisCache(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize analysis cache: %v", err)
		}
		defer closeStore()
		analyzer = nlp.NewCachedAnalyzer(analyzer, store, cfg.NLP.CacheTTL, logger)
	}

	opts := []assistant.Option{
		assistant.WithLogger(logger),
		assistant.WithMetrics(appMetrics),
	}

	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to transcript archive...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		archive, err := storage.NewMinIOArchive(ctx, &cfg.Storage)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize transcript archive: %v", err)
		}
		opts = append(opts, assistant.WithArchive(archive))
		log.Printf("✅ Archiving transcripts to bucket %s", cfg.Storage.BucketName)
	}

	log.Println("⚙️  Initializing assistant service...")
	repo := repository.NewAssistantRepository(db)
	service := assistant.NewAssistantService(analyzer, cfg.NLP.Backend, repo, opts...)
	assistantHandler := handler.NewAssistant(service, cfg.NLP.Backend, logger)

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, assistantHandler, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// newAnalyzer builds the configured backend once for the whole process
func newAnalyzer(cfg *config.Config, logger *zap.Logger) (nlp.Analyzer, error) {
	switch strings.ToLower(cfg.NLP.Backend) {
	case config.NLPBackendSpacy:
		client := nlp.NewSpacyClient(cfg.NLP.SpacyURL, cfg.NLP.SpacyTimeout, logger)
		log.Printf("⏳ Waiting for spaCy service at %s...", cfg.NLP.SpacyURL)
		if err := client.WaitReady(context.Background(), cfg.NLP.ReadyTimeout); err != nil {
			return nil, fmt.Errorf("spacy service not ready: %w", err)
		}
		log.Println("✅ spaCy service ready")
		return client, nil
	default:
		analyzer, err := nlp.NewProseAnalyzer(logger)
		if err != nil {
			return nil, err
		}
		log.Println("✅ prose model loaded")
		return analyzer, nil
	}
}

// newAnalysisCache returns Redis when enabled, otherwise the in-memory store
func newAnalysisCache(cfg *config.Config) (nlp.Cache, func(), error) {
	if !cfg.Redis.Enabled {
		log.Println("📦 Using in-memory analysis cache")
		store := cache.NewMemoryStore(5 * time.Minute)
		return store, func() { store.Close() }, nil
	}

	log.Println("📦 Connecting to Redis...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisStore(client), func() { client.Close() }, nil
}
