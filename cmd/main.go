package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/akulinkin/stockboard/internal/handlers"
	"github.com/akulinkin/stockboard/internal/jwt"
	"github.com/akulinkin/stockboard/internal/logger"
	"github.com/akulinkin/stockboard/internal/middlewares"
	"github.com/akulinkin/stockboard/internal/migrations"
	"github.com/akulinkin/stockboard/internal/quotes"
	"github.com/akulinkin/stockboard/internal/refresher"
	"github.com/akulinkin/stockboard/internal/repositories"
	"github.com/akulinkin/stockboard/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title stockboard API
// @version 1.0.0
// @description Service for user watchlists and periodically refreshed stock quotes
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		quoteAPIBaseURL, quoteFetchTimeoutSecond, quoteCacheTTLSecond, refreshIntervalSecond,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		quoteAPIBaseURL, quoteFetchTimeoutSecond, quoteCacheTTLSecond, refreshIntervalSecond,
		kafkaAddr, kafkaTopic, logLevel,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, quote source, Kafka, logging, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	quoteAPIBaseURL string, quoteFetchTimeoutSecond, quoteCacheTTLSecond, refreshIntervalSecond int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "stockboard")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}

	// Quote source config
	quoteAPIBaseURL = getEnv("QUOTE_API_BASE_URL", "https://query1.finance.yahoo.com")
	if quoteFetchTimeoutSecond, err = strconv.Atoi(getEnv("QUOTE_FETCH_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	if quoteCacheTTLSecond, err = strconv.Atoi(getEnv("QUOTE_CACHE_TTL_SECOND", "30")); err != nil {
		return
	}
	if refreshIntervalSecond, err = strconv.Atoi(getEnv("REFRESH_INTERVAL_SECOND", "10")); err != nil {
		return
	}

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "watchlist-updates")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, PostgreSQL, Redis, Kafka, and the HTTP server.
// It sets up routes, applies middleware, starts the background quote
// refresher, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	quoteAPIBaseURL string, quoteFetchTimeoutSecond, quoteCacheTTLSecond, refreshIntervalSecond int,
	kafkaAddr, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)

	// Apply schema migrations
	if err := migrations.Run(ctx, db.DB); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for watchlist update events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka writer initialized for topic %s at %s", kafkaTopic, kafkaAddr)
	} else {
		logger.Log.Info("Kafka address not configured, watchlist events disabled")
	}

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	watchlistReadRepo := repositories.NewWatchlistReadRepository(db)
	watchlistWriteRepo := repositories.NewWatchlistWriteRepository(db, middlewares.GetTxFromContext)
	quoteCacheRepo := repositories.NewQuoteCacheRepository(rdb, time.Duration(quoteCacheTTLSecond)*time.Second)

	// Quote source client
	quoteClient := quotes.New(
		quotes.WithBaseURL(quoteAPIBaseURL),
		quotes.WithTimeout(time.Duration(quoteFetchTimeoutSecond)*time.Second),
	)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, watchlistWriteRepo, tokener)
	watchlistService := services.NewWatchlistService(watchlistReadRepo, watchlistWriteRepo, kafkaWriter)
	quoteService := services.NewQuoteService(quoteClient, quoteCacheRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	watchlistGetHandler := handlers.NewWatchlistGetHandler(watchlistService)
	watchlistSaveHandler := handlers.NewWatchlistSaveHandler(watchlistService)
	watchlistQuotesHandler := handlers.NewWatchlistQuotesHandler(watchlistService, quoteService)
	quotesHandler := handlers.NewQuotesHandler(quoteService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.With(middlewares.TxMiddleware(db)).Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))
		r.Get("/watchlist", watchlistGetHandler)
		r.With(middlewares.TxMiddleware(db)).Put("/watchlist", watchlistSaveHandler)
		r.Get("/watchlist/quotes", watchlistQuotesHandler)
		r.Get("/quotes", quotesHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Background refresher keeps the quote cache warm for every watchlist
	refr := refresher.New(
		watchlistReadRepo,
		quoteService,
		time.Duration(refreshIntervalSecond)*time.Second,
		time.Duration(quoteFetchTimeoutSecond)*time.Second,
	)
	go refr.Run(ctxShutdown)

	errChan := make(chan error, 1)
	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
