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

	"github.com/mtsfitness/fitness-backend/internal/facades"
	"github.com/mtsfitness/fitness-backend/internal/handlers"
	"github.com/mtsfitness/fitness-backend/internal/logger"
	"github.com/mtsfitness/fitness-backend/internal/middlewares"
	"github.com/mtsfitness/fitness-backend/internal/oidc"
	"github.com/mtsfitness/fitness-backend/internal/repositories"
	"github.com/mtsfitness/fitness-backend/internal/services"
	"github.com/mtsfitness/fitness-backend/internal/sessions"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title fitness-backend API
// @version 1.0.0
// @description Backend for the fitness tracker: delegated login, onboarding profile and day-of-week exercise suggestions
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name fitness_session
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionExpSecond, cacheExpSecond,
		kafkaAddr, kafkaTopic,
		oidcClientID, oidcClientSecret, oidcIssuerURL,
		baseURL, frontendHost,
		apiHost, apiKey, suggestionLimit,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		sessionExpSecond, cacheExpSecond,
		kafkaAddr, kafkaTopic,
		oidcClientID, oidcClientSecret, oidcIssuerURL,
		baseURL, frontendHost,
		apiHost, apiKey, suggestionLimit,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, identity provider and catalog
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionExpSecond, cacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	oidcClientID, oidcClientSecret, oidcIssuerURL string,
	baseURL, frontendHost string,
	apiHost, apiKey string, suggestionLimit int,
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
	pgDB = getEnv("POSTGRES_DB", "fitness")
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
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if sessionExpSecond, err = strconv.Atoi(getEnv("SESSION_EXP_SECOND", "86400")); err != nil {
		return
	}
	if cacheExpSecond, err = strconv.Atoi(getEnv("CACHE_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config, optional: empty KAFKA_ADDR disables signup events
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "signup-events")

	// Identity provider config
	oidcClientID = getEnv("OIDC_CLIENT_ID", "")
	oidcClientSecret = getEnv("OIDC_CLIENT_SECRET", "")
	oidcIssuerURL = getEnv("OIDC_ISSUER_BASE_URL", "")

	// Frontend config
	baseURL = getEnv("BASE_URL", "http://localhost:8080")
	frontendHost = getEnv("FRONTEND_HOST", "localhost:3000")

	// Exercise catalog config
	apiHost = getEnv("API_HOST", "exercisedb.p.rapidapi.com")
	apiKey = getEnv("API_KEY", "")
	if suggestionLimit, err = strconv.Atoi(getEnv("SUGGESTION_LIMIT", "3")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	sessionExpSecond, cacheExpSecond int,
	kafkaAddr, kafkaTopic string,
	oidcClientID, oidcClientSecret, oidcIssuerURL string,
	baseURL, frontendHost string,
	apiHost, apiKey string, suggestionLimit int,
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
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", pgHost, pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for signup events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Identity provider and session store
	provider := oidc.New(oidcClientID, oidcClientSecret, oidcIssuerURL)
	sessionStore := sessions.New(rdb, time.Duration(sessionExpSecond)*time.Second)

	// Exercise catalog facade and cache
	catalog := facades.NewExerciseCatalogHTTPFacade(apiHost, apiKey, nil)
	exerciseCache := repositories.NewExerciseCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	detailsReadRepo := repositories.NewUserDetailsReadRepository(db)
	detailsWriteRepo := repositories.NewUserDetailsWriteRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	onboardingService := services.NewOnboardingService(
		userReadRepo, userWriteRepo, detailsReadRepo, detailsWriteRepo, kafkaWriter, nil)
	suggestionService := services.NewSuggestionService(
		userReadRepo, detailsReadRepo, catalog, exerciseCache, suggestionLimit, nil)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler(sessionStore, onboardingService, frontendHost)
	loginHandler := handlers.NewLoginHandler(provider, baseURL)
	callbackHandler := handlers.NewCallbackHandler(provider, sessionStore)
	logoutHandler := handlers.NewLogoutHandler(sessionStore, provider, frontendHost)
	nameHandler := handlers.NewGetNameHandler()
	profileHandler := handlers.NewProfileHandler()
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	usersHandler := handlers.NewListUsersHandler(onboardingService)
	userHandler := handlers.NewGetUserHandler(onboardingService)
	addUserInfoHandler := handlers.NewAddUserInfoHandler(onboardingService)
	getUserInfoHandler := handlers.NewGetUserInfoHandler(onboardingService)
	musclesHandler := handlers.NewMuscleExercisesHandler(catalog)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.CORSMiddleware(fmt.Sprintf("http://%s", frontendHost)))

	// Public routes
	r.Get("/", rootHandler)
	r.Get("/login", loginHandler)
	r.Get("/callback", callbackHandler)
	r.Post("/callback", callbackHandler)
	r.Get("/logout", logoutHandler)
	r.Get("/api/exercises/muscles/{muscle}", musclesHandler)

	// Protected routes with session middleware
	authMiddleware := middlewares.AuthMiddleware(sessionStore)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/getName", nameHandler)
		r.Get("/profile", profileHandler)
		r.Get("/suggestion", suggestionHandler)
		r.Get("/users", usersHandler)
		r.Get("/getUser", userHandler)
		r.Get("/getUserInfo", getUserInfoHandler)
	})
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/addUserInfo", addUserInfoHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

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
