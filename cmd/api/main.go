package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"xintern-backend/internal/config"
	"xintern-backend/internal/handler"
	"xintern-backend/internal/middleware"
	"xintern-backend/internal/repository"
	"xintern-backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redis, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v (caching disabled)", err)
		redis = nil
	}
	if redis != nil {
		defer redis.Close()
	}

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (logo upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redis, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))
	app.Use(middleware.RequestInfo())

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService service.AuthService) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	// Read paths are public.
	companies := v1.Group("/companies")
	companies.Get("/", h.Company.List)
	companies.Get("/top", h.Company.Top)
	companies.Get("/find", h.Company.Find)
	companies.Get("/locations", h.Company.Locations)
	companies.Get("/location/:location", h.Company.ByLocation)
	companies.Get("/search/:companyName", h.Company.Search)
	companies.Get("/:companyId", h.Company.Get)

	reviews := v1.Group("/reviews")
	reviews.Get("/flagged", h.Review.ListFlagged)
	reviews.Get("/:reviewId", h.Review.Get)

	protected := v1.Group("", middleware.AuthRequired(authService))

	protected.Get("/users/me", h.Auth.Me)

	protected.Post("/companies", h.Company.Create)
	protected.Put("/companies/:companyId", h.Company.Update)
	protected.Put("/companies/:companyId/logo", h.Company.UploadLogo)
	protected.Delete("/companies/:companyId", h.Company.Delete)

	protected.Post("/reviews", h.Review.Create)
	protected.Put("/reviews/:reviewId", h.Review.Update)
	protected.Patch("/reviews/:reviewId/flag", h.Review.Flag)
	protected.Post("/reviews/:reviewId/vote", h.Review.Vote)
	protected.Delete("/reviews/:reviewId", h.Review.Delete)

	protected.Put("/ratings/:ratingId", h.Review.UpdateRating)

	protected.Post("/reviews/:reviewId/comments", h.Comment.Create)
	protected.Put("/comments/:commentId", h.Comment.Update)
	protected.Post("/comments/:commentId/vote", h.Comment.Vote)
	protected.Delete("/comments/:commentId", h.Comment.Delete)
}
