package server

import (
	"log"

	"paperspace-be/internal/bootstrap"
	"paperspace-be/internal/config"
	"paperspace-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length",
	}))

	app.Use(otelfiber.Middleware())
	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	registerRoutes(app, container)

	return &Server{app: app, cfg: cfg}
}

func registerRoutes(app *fiber.App, container *bootstrap.Container) {
	api := app.Group("/api")

	container.AuthController.RegisterRoutes(api)
	container.WorkspaceController.RegisterRoutes(api)
	container.PaperController.RegisterRoutes(api)
	container.ChatController.RegisterRoutes(api)
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on port %s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}
