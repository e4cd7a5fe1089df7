package router

import (
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/ruislan/ktap-sub003/internal/handlers"
	"github.com/ruislan/ktap-sub003/internal/janitor"
	"github.com/ruislan/ktap-sub003/internal/middleware"
	"github.com/ruislan/ktap-sub003/internal/models"
	"github.com/ruislan/ktap-sub003/internal/notifier"
	"github.com/ruislan/ktap-sub003/internal/repositories"
	"github.com/ruislan/ktap-sub003/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes wires repositories, the dispatcher, and the janitor, and
// registers all application routes. The returned scheduler is started by
// the caller and stopped at shutdown.
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config, log *zap.Logger) (*janitor.Scheduler, error) {
	if err := pgdb.AutoMigrate(
		&models.User{},
		&models.FollowApp{},
		&models.FollowUser{},
		&models.Notification{},
		&models.NotificationPreference{},
	); err != nil {
		return nil, err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	followRepo := repositories.NewPostgresFollowRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	preferenceRepo := repositories.NewPostgresPreferenceRepository(pgdb)
	timelineRepo := repositories.NewTimelineRepository(mgClient.Database(cfg.MongoDatabase))

	dispatcher := notifier.New(preferenceRepo, followRepo, notificationRepo, log)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, timelineRepo, cfg.TokenValidFor)
	authHandler.RegisterAuthRoutes(authGroup)

	// --- Protected routes (require a valid, non-revoked JWT) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(timelineRepo))
	authHandler.RegisterSessionRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	notificationHandler.RegisterNotificationRoutes(api)

	settingsHandler := handlers.NewSettingsHandler(preferenceRepo)
	settingsHandler.RegisterSettingsRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, timelineRepo)
	followHandler.RegisterFollowRoutes(api)

	eventHandler := handlers.NewEventHandler(dispatcher)
	eventHandler.RegisterEventRoutes(api)

	// --- Janitor ---
	scheduler := janitor.NewScheduler(log,
		janitor.ExpiredNotificationsTask(notificationRepo, cfg.NotificationPerUserMax, log),
		janitor.ExpiredTimelineTask(timelineRepo, time.Now, log),
		janitor.ExpiredTokensTask(timelineRepo, cfg.TokenValidFor, time.Now, log),
	)

	return scheduler, nil
}
