// Package server wires repositories, services and handlers into a Fiber app.
package server

import (
	"context"
	"time"

	"starwars/internal/database"
	"starwars/internal/handlers"
	"starwars/internal/logging"
	"starwars/internal/metrics"
	"starwars/internal/repositories"
	"starwars/internal/services"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Options configures New.
type Options struct {
	// CORSOrigins is a comma separated list of allowed origins, "*" for any.
	CORSOrigins string
	// Publisher receives "<entity>.created" events. Nil disables publishing.
	Publisher services.EventPublisher
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// New builds the HTTP application on top of db.
func New(db *gorm.DB, opts Options) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)
	characterRepo := repositories.NewGORMCharacterRepository(db)
	planetRepo := repositories.NewGORMPlanetRepository(db)
	favoriteRepo := repositories.NewGORMFavoriteRepository(db)

	userService := services.NewUserService(userRepo, opts.Publisher)
	characterService := services.NewCharacterService(characterRepo, opts.Publisher)
	planetService := services.NewPlanetService(planetRepo, opts.Publisher)
	favoriteService := services.NewFavoriteService(favoriteRepo, opts.Publisher)

	app := fiber.New(fiber.Config{
		AppName:      "starwars-api",
		ErrorHandler: handlers.ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
			Output: logging.Writer(),
		}))
	}
	origins := opts.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))
	app.Use(metrics.Middleware())

	app.Get("/health", healthHandler(db))
	app.Get("/metrics", metrics.Handler())

	handlers.NewUserHandler(userService).RegisterRoutes(app)
	handlers.NewCharacterHandler(characterService).RegisterRoutes(app)
	handlers.NewPlanetHandler(planetService).RegisterRoutes(app)
	handlers.NewFavoriteHandler(favoriteService).RegisterRoutes(app)

	return app
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status, dbStatus, code := "healthy", "up", fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			logging.Warn().Err(err).Msg("database ping failed")
			status, dbStatus, code = "unhealthy", "down", fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
		})
	}
}
