package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sbilibin2017/idea2context/docs"
	"github.com/sbilibin2017/idea2context/internal/config"
	"github.com/sbilibin2017/idea2context/internal/facades"
	"github.com/sbilibin2017/idea2context/internal/handlers"
	"github.com/sbilibin2017/idea2context/internal/hasher"
	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/metrics"
	"github.com/sbilibin2017/idea2context/internal/middlewares"
	"github.com/sbilibin2017/idea2context/internal/repositories"
	"github.com/sbilibin2017/idea2context/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "idea2context"

// @title idea2context API
// @version 1.0.0
// @description Accounts and Markdown app specification generator
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads the env file and the environment and validates the result.
func parseConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// routes holds everything newRouter mounts.
type routes struct {
	corsOrigins []string
	observer    middlewares.RequestObserver
	register    http.HandlerFunc
	login       http.HandlerFunc
	generate    http.HandlerFunc
	health      http.HandlerFunc
	metrics     http.Handler
	swagger     http.HandlerFunc
}

// newRouter builds the chi router with middleware and all public routes.
func newRouter(rt routes) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(rt.observer))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: rt.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{"Content-Disposition", middlewares.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Post("/auth/register", rt.register)
	r.Post("/auth/login", rt.login)
	r.Post("/generate", rt.generate)

	r.Get("/healthz", rt.health)
	r.Method(http.MethodGet, "/metrics", rt.metrics)
	r.Get("/swagger/*", rt.swagger)

	return r
}

// run initializes the logger, the user store, the outbound clients and the
// HTTP server. It sets up routes and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Open the user store. An unreachable store is reported per request, not at startup.
	db, err := sqlx.Open("pgx", cfg.ServiceDSN())
	if err != nil {
		return fmt.Errorf("open user store: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.StoreMaxOpenConns)
	db.SetMaxIdleConns(cfg.StoreMaxIdleConns)

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.StoreTimeout)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Log.Warnw("user store is not reachable at startup", "err", err)
	}
	cancelPing()

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Initialize outbound clients
	var events services.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher := facades.NewKafkaEventPublisher(cfg.KafkaBrokers, cfg.KafkaAuthTopic)
		defer publisher.Close()
		events = publisher
		logger.Log.Infof("Publishing auth events to topic %s", cfg.KafkaAuthTopic)
	}

	var completer services.Completer
	if cfg.GenerationEnabled() {
		completer = facades.NewOpenAICompletionFacade(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		logger.Log.Infof("Generation API enabled with model %s", cfg.OpenAIModel)
	} else {
		logger.Log.Warn("OPENAI_API_KEY is not set, documents will use the fallback template")
	}

	pwHasher, err := hasher.New(cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("init password hasher: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, pwHasher, events, cfg.StoreTimeout)
	documentService := services.NewDocumentService(completer, cfg.GenerationTimeout, m)

	docs.SwaggerInfo.Host = cfg.Addr()

	// Setup router
	r := newRouter(routes{
		corsOrigins: cfg.CORSOrigins,
		observer:    m,
		register:    handlers.NewRegisterHandler(authService),
		login:       handlers.NewLoginHandler(authService),
		generate:    handlers.NewGenerateHandler(documentService),
		health:      handlers.NewHealthHandler(userRepo, cfg.StoreTimeout),
		metrics:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		swagger: httpSwagger.Handler(
			httpSwagger.URL(fmt.Sprintf("http://%s/swagger/doc.json", cfg.Addr())),
		),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.GenerationTimeout + 10*time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	// Let last-login updates and event publishing finish before closing their clients.
	authService.Wait()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
