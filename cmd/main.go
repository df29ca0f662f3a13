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

	"github.com/weatherwize/weatherwize/internal/facades"
	"github.com/weatherwize/weatherwize/internal/handlers"
	"github.com/weatherwize/weatherwize/internal/jwt"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/middlewares"
	"github.com/weatherwize/weatherwize/internal/models"
	"github.com/weatherwize/weatherwize/internal/repositories"
	"github.com/weatherwize/weatherwize/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title WeatherWize API
// @version 1.0.0
// @description Multi-user weather dashboard: auth, weather lookups and saved locations
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddress, kafkaTopic,
		weatherAPIKey, geoBaseURL, dataBaseURL,
		geocodeCacheTTLSecond, upstreamTimeoutSecond,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddress, kafkaTopic,
		weatherAPIKey, geoBaseURL, dataBaseURL,
		geocodeCacheTTLSecond, upstreamTimeoutSecond,
		jwtSecret, jwtExpSecond,
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
// application, database, Redis, upstream-provider, and JWT configuration.
// The signing secret and API key are read exactly once here and injected;
// nothing else touches the environment.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddress, kafkaTopic string,
	weatherAPIKey, geoBaseURL, dataBaseURL string,
	geocodeCacheTTLSecond, upstreamTimeoutSecond int,
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
	pgDB = getEnv("POSTGRES_DB", "weatherwize")
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

	// Kafka config; an empty address disables event publishing
	kafkaAddress = getEnv("KAFKA_ADDRESS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "saved-locations")

	// Upstream weather provider config
	weatherAPIKey = getEnv("OPENWEATHER_API_KEY", "")
	geoBaseURL = getEnv("OPENWEATHER_GEO_URL", "https://api.openweathermap.org/geo/1.0")
	dataBaseURL = getEnv("OPENWEATHER_DATA_URL", "https://api.openweathermap.org/data/2.5")
	if geocodeCacheTTLSecond, err = strconv.Atoi(getEnv("GEOCODE_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}
	if upstreamTimeoutSecond, err = strconv.Atoi(getEnv("UPSTREAM_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, and upstream HTTP client.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddress, kafkaTopic string,
	weatherAPIKey, geoBaseURL, dataBaseURL string,
	geocodeCacheTTLSecond, upstreamTimeoutSecond int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
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

	// Kafka writer for saved-location events; left nil when no broker is
	// configured, the service skips publishing in that case
	var locationEvents services.KafkaWriter
	if kafkaAddress != "" {
		kafkaWriter := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddress),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		locationEvents = kafkaWriter
		logger.Log.Infof("Kafka writer configured for %s, topic %s", kafkaAddress, kafkaTopic)
	}

	// Upstream HTTP client, shared by the geocoding and weather facades
	upstreamClient := &http.Client{
		Timeout: time.Duration(upstreamTimeoutSecond) * time.Second,
	}

	// Initialize JWT service
	tokenService := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	locationReadRepo := repositories.NewSavedLocationReadRepository(db)
	locationWriteRepo := repositories.NewSavedLocationWriteRepository(db)
	geocodeCache := repositories.NewGeocodeCacheRepository(rdb, time.Duration(geocodeCacheTTLSecond)*time.Second)

	// Initialize facades
	geocodingFacade := facades.NewGeocodingHTTPFacade(upstreamClient, weatherAPIKey, geoBaseURL)
	weatherFacade := facades.NewWeatherHTTPFacade(upstreamClient, weatherAPIKey, dataBaseURL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenService)
	weatherService := services.NewWeatherService(geocodingFacade, geocodeCache, weatherFacade)
	locationService := services.NewLocationService(locationReadRepo, locationWriteRepo, locationEvents)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	updateRoleHandler := handlers.NewUpdateRoleHandler(authService)
	getWeatherHandler := handlers.NewGetWeatherHandler(weatherService)
	hourlyForecastHandler := handlers.NewGetHourlyForecastHandler(weatherService)
	saveLocationHandler := handlers.NewSaveLocationHandler(locationService)
	listLocationsHandler := handlers.NewListSavedLocationsHandler(locationService)
	deleteLocationHandler := handlers.NewDeleteLocationHandler(locationService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokenService)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Admin-only role management
		r.With(authMiddleware, middlewares.RequireRole(models.RoleAdmin)).
			Put("/users/{id}/role", updateRoleHandler)
	})

	// Weather routes stay protected for every role
	r.Route("/api/weather", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", getWeatherHandler)
		r.Get("/hourly", hourlyForecastHandler)
		r.Post("/save", saveLocationHandler)
		r.Get("/saved", listLocationsHandler)
		r.Delete("/saved/{id}", deleteLocationHandler)
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
