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

	"cloud.google.com/go/storage"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/gearted/gearted-backend/docs"
	"github.com/gearted/gearted-backend/internal/config"
	"github.com/gearted/gearted-backend/internal/facades"
	"github.com/gearted/gearted-backend/internal/handlers"
	"github.com/gearted/gearted-backend/internal/jwt"
	"github.com/gearted/gearted-backend/internal/logger"
	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/gearted/gearted-backend/internal/repositories"
	"github.com/gearted/gearted-backend/internal/services"
	"github.com/gearted/gearted-backend/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	compatibilityCacheTTL = 1800 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// @title Gearted API
// @version 1.0.0
// @description Airsoft marketplace backend: accounts, listings, equipment compatibility and listing images
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// dependencies holds everything the router wires into handlers.
type dependencies struct {
	db       *sqlx.DB
	cache    *repositories.ResponseCacheRepository
	tokener  *jwt.JWT
	users    *repositories.UserReadRepository
	policy   *services.AdminPolicy
	auth     *services.AuthService
	oauth    *services.OAuthService
	compat   *services.CompatibilityService
	admin    *services.AdminService
	images   *services.ImageService
	listings *services.ListingService
}

// adminUserStore joins the user read and write repositories for moderation.
type adminUserStore struct {
	*repositories.UserReadRepository
	*repositories.UserWriteRepository
}

// adminListingStore joins the listing counter with the bulk suspension.
type adminListingStore struct {
	*repositories.ListingReadRepository
	*repositories.ListingWriteRepository
}

// run initializes the logger, database, Redis, Kafka, object storage and the
// HTTP server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel, cfg.App.IsProduction()); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("connecting to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis. The cache degrades to a bypass when Redis is down.
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Warnw("Redis unreachable, responses will not be cached", "addr", cfg.Redis.Addr(), "error", err)
	}
	defer rdb.Close()

	var kafkaWriter services.KafkaWriter
	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		w := facades.NewAnalyticsWriter(brokers, cfg.Kafka.AnalyticsTopic)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("publishing analytics to Kafka", "brokers", brokers, "topic", cfg.Kafka.AnalyticsTopic)
	}

	var objectStore services.ObjectStore
	if cfg.Upload.Bucket != "" {
		client, err := storage.NewClient(ctx)
		if err != nil {
			logger.Log.Warnw("object storage unavailable, uploads disabled", "bucket", cfg.Upload.Bucket, "error", err)
		} else {
			defer client.Close()
			objectStore = facades.NewGCSObjectStore(client, cfg.Upload.Bucket, cfg.Upload.PublicBaseURL)
		}
	}

	verifiers := map[models.Provider]services.ProviderVerifier{}
	if cfg.OAuth.GoogleClientID != "" {
		verifiers[models.ProviderGoogle] = facades.NewGoogleVerifier(cfg.OAuth.GoogleClientID, cfg.OAuth.Timeout)
	}
	if cfg.OAuth.FacebookAppID != "" {
		verifiers[models.ProviderFacebook] = facades.NewFacebookVerifier(cfg.OAuth.FacebookAppID, cfg.OAuth.Timeout)
	}

	tokener := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(cfg.JWT.Exp),
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithAudience(cfg.JWT.Audience),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	equipmentRepo := repositories.NewEquipmentReadRepository(db)
	ruleReadRepo := repositories.NewCompatibilityReadRepository(db)
	ruleWriteRepo := repositories.NewCompatibilityWriteRepository(db)
	analyticsRepo := repositories.NewAnalyticsWriteRepository(db)
	listingReadRepo := repositories.NewListingReadRepository(db)
	listingWriteRepo := repositories.NewListingWriteRepository(db)

	// Initialize services
	analyticsService := services.NewAnalyticsService(analyticsRepo, kafkaWriter)
	imageService := services.NewImageService(objectStore, services.ImageOptions{
		MaxDimension: cfg.Upload.MaxDimension,
		MaxPixels:    cfg.Upload.MaxPixels,
		JPEGQuality:  cfg.Upload.JPEGQuality,
		MaxFiles:     cfg.Upload.MaxFiles,
		Timeout:      cfg.Upload.Timeout,
	})
	deps := dependencies{
		db:      db,
		cache:   repositories.NewResponseCacheRepository(rdb),
		tokener: tokener,
		users:   userReadRepo,
		policy:  services.NewAdminPolicy(cfg.Admin.EmailList()),
		auth:    services.NewAuthService(userReadRepo, userWriteRepo, tokener),
		oauth:   services.NewOAuthService(userReadRepo, userWriteRepo, tokener, verifiers, cfg.OAuth.Timeout),
		compat:  services.NewCompatibilityService(ruleReadRepo, ruleWriteRepo, equipmentRepo, analyticsService),
		admin: services.NewAdminService(
			adminUserStore{userReadRepo, userWriteRepo},
			adminListingStore{listingReadRepo, listingWriteRepo},
			equipmentRepo, ruleReadRepo,
		),
		images:   imageService,
		listings: services.NewListingService(listingReadRepo, listingWriteRepo, imageService),
	}

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:           newRouter(cfg, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every route on a chi router.
func newRouter(cfg *config.Config, d dependencies) http.Handler {
	var (
		cache       middlewares.ResponseCache
		invalidator handlers.CacheInvalidator
	)
	if d.cache != nil {
		cache = d.cache
		invalidator = d.cache
	}

	auth := middlewares.AuthMiddleware(d.tokener, d.users)
	optionalAuth := middlewares.OptionalAuthMiddleware(d.tokener, d.users)
	adminOnly := middlewares.AdminMiddleware(d.policy)
	compatCache := middlewares.CacheMiddleware(cache, handlers.CompatibilityCachePrefix, compatibilityCacheTTL)

	r := chi.NewRouter()
	r.Use(middlewares.RecoverMiddleware(cfg.App.IsProduction()))
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/health", handlers.NewHealthHandler(d.db))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(d.auth))
		r.Post("/login", handlers.NewLoginHandler(d.auth))
		r.Post("/oauth/{provider}", handlers.NewOAuthHandler(d.oauth))
		r.With(auth).Get("/me", handlers.NewMeHandler(d.auth))
	})

	r.Route("/compatibility", func(r chi.Router) {
		r.With(optionalAuth, compatCache, middlewares.ConnMiddleware(d.db)).
			Get("/{idA}/{idB}", handlers.NewCompatibilityHandler(d.compat))
		r.With(compatCache, middlewares.ConnMiddleware(d.db)).
			Get("/equipment/{equipmentId}", handlers.NewCompatibleEquipmentHandler(d.compat))
		r.With(auth, adminOnly, middlewares.TxMiddleware(d.db)).
			Post("/", handlers.NewAddRuleHandler(d.compat, invalidator))
	})

	r.Route("/listings", func(r chi.Router) {
		r.With(middlewares.ConnMiddleware(d.db)).Get("/", handlers.NewListListingsHandler(d.listings))
		r.With(optionalAuth, middlewares.ConnMiddleware(d.db)).Get("/{id}", handlers.NewGetListingHandler(d.listings))

		r.Group(func(r chi.Router) {
			r.Use(auth, middlewares.TxMiddleware(d.db))
			r.Post("/", handlers.NewCreateListingHandler(d.listings))
			r.Put("/{id}", handlers.NewUpdateListingHandler(d.listings))
			r.Patch("/{id}/sold", handlers.NewMarkSoldHandler(d.listings))
			r.Delete("/{id}", handlers.NewDeleteListingHandler(d.listings))
		})
	})

	r.Route("/uploads", func(r chi.Router) {
		r.Use(auth)
		r.Post("/", handlers.NewUploadHandler(d.images, cfg.Upload.MaxFileBytes, cfg.Upload.MaxFiles))
		r.Delete("/", handlers.NewDeleteImageHandler(d.images))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(auth, adminOnly)
		r.Get("/users", handlers.NewListUsersHandler(d.admin))
		r.Patch("/users/{id}/admin", handlers.NewSetAdminHandler(d.admin))
		r.Get("/stats", handlers.NewStatsHandler(d.admin))
		r.Get("/listings", handlers.NewAdminListListingsHandler(d.listings))

		r.Group(func(r chi.Router) {
			r.Use(middlewares.TxMiddleware(d.db))
			r.Post("/users/{id}/suspend", handlers.NewSuspendUserHandler(d.admin))
			r.Delete("/users/{id}", handlers.NewDeleteUserHandler(d.admin))
			r.Patch("/listings/{id}/status", handlers.NewSetListingStatusHandler(d.listings))
			r.Delete("/listings/{id}", handlers.NewAdminDeleteListingHandler(d.listings))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.App.Host, cfg.App.Port)),
	))

	return r
}
