package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kerem/hostelhub/internal/app/controllers"
	appMigrations "github.com/kerem/hostelhub/internal/app/migrations"
	appRepos "github.com/kerem/hostelhub/internal/app/repositories"
	appRoutes "github.com/kerem/hostelhub/internal/app/routes"
	appServices "github.com/kerem/hostelhub/internal/app/services"
	"github.com/kerem/hostelhub/internal/config"
	"github.com/kerem/hostelhub/internal/db"
	appMiddleware "github.com/kerem/hostelhub/internal/middleware"
	pkgAuth "github.com/kerem/hostelhub/internal/pkg/auth"
	"github.com/kerem/hostelhub/internal/pkg/geocode"
	"github.com/kerem/hostelhub/internal/pkg/helpers"
	"github.com/kerem/hostelhub/internal/pkg/logger"
	"github.com/kerem/hostelhub/internal/pkg/mailer"
	"github.com/kerem/hostelhub/internal/pkg/mediastore"
	"github.com/kerem/hostelhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services             *appServices.Services
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	HostelController     *appControllers.HostelController
	ContentController    *appControllers.ContentController
	SingletonController  *appControllers.SingletonController
	FacilityController   *appControllers.FacilityController
	IntakeController     *appControllers.IntakeController
	NewsletterController *appControllers.NewsletterController
	MediaController      *appControllers.MediaController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	PageCache            *cache.Cache
	PageCacheTTL         time.Duration
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.Run(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failures are logged but do not block startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// buildMailer selects the mail provider configured for the deployment
func buildMailer(cfg *config.Config, lgr zerolog.Logger) mailer.Mailer {
	switch cfg.Mailer.Provider {
	case "sendgrid":
		lgr.Info().Msg("Using SendGrid mail provider")
		breaker := config.NewCircuitBreaker("sendgrid")
		return mailer.NewSendGridMailer(cfg.Mailer.APIKey, cfg.Mailer.FromName, cfg.Mailer.FromEmail, breaker)
	default:
		lgr.Info().Msg("Using console mail provider")
		return mailer.NewConsoleMailer()
	}
}

// buildMediaStore selects the media storage backend
func buildMediaStore(cfg *config.Config, lgr zerolog.Logger) (mediastore.MediaStore, error) {
	switch cfg.Media.Backend {
	case "oss":
		lgr.Info().Str("bucket", cfg.Media.OSS.Bucket).Msg("Using OSS media backend")
		return mediastore.NewOSSStore(mediastore.OSSConfig{
			Endpoint:        cfg.Media.OSS.Endpoint,
			Bucket:          cfg.Media.OSS.Bucket,
			AccessKeyID:     cfg.Media.OSS.AccessKeyID,
			AccessKeySecret: cfg.Media.OSS.AccessKeySecret,
			PublicBaseURL:   cfg.Media.OSS.PublicBaseURL,
		})
	default:
		lgr.Info().Str("path", cfg.Server.StoragePath).Msg("Using local media backend")
		baseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
		return mediastore.NewLocalStore(cfg.Server.StoragePath, baseURL)
	}
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	mail := buildMailer(cfg, lgr)

	store, err := buildMediaStore(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize media storage")
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	geocoder := geocode.NewClient(
		cfg.Geocoder.BaseURL,
		cfg.Geocoder.UserAgent,
		helpers.ParseDuration(cfg.Geocoder.CacheTTL, 24*time.Hour),
		config.NewCircuitBreaker("geocoder"),
	)

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, mail, store, geocoder)

	deps.PageCacheTTL = helpers.ParseDuration(cfg.Cache.PageTTL, 5*time.Minute)
	deps.PageCache = cache.New(deps.PageCacheTTL, 10*time.Minute)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.HostelController = appControllers.NewHostelController(deps.Services.HostelService)
	deps.ContentController = appControllers.NewContentController(deps.Services.ContentService)
	deps.SingletonController = appControllers.NewSingletonController(deps.Services.SingletonService)
	deps.FacilityController = appControllers.NewFacilityController(deps.Services.FacilityService)
	deps.IntakeController = appControllers.NewIntakeController(deps.Services.IntakeService)
	deps.NewsletterController = appControllers.NewNewsletterController(deps.Services.NewsletterService)
	deps.MediaController = appControllers.NewMediaController(deps.Services.MediaService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.HostelController,
		deps.ContentController,
		deps.SingletonController,
		deps.FacilityController,
		deps.IntakeController,
		deps.NewsletterController,
		deps.MediaController,
		deps.AuthMiddleware,
		deps.PageCache,
		deps.PageCacheTTL,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
