package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/talentgate/jobportal/pkg/errx"
	"github.com/talentgate/jobportal/pkg/logx"
	"github.com/talentgate/jobportal/portal/adminauth"
	"github.com/talentgate/jobportal/portal/application/applicationapi"
	"github.com/talentgate/jobportal/portal/job/jobapi"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting Job Portal API Server...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logx.Debugf("no .env file loaded: %v", err)
	}

	// 2. Initialize Dependency Container
	container := NewContainer()
	defer func() {
		if err := container.Mongo.Disconnect(context.Background()); err != nil {
			logx.Warnf("Failed to disconnect from MongoDB: %v", err)
		}
	}()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Job Portal API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: container.Config.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		if err := container.Mongo.Ping(ctx, nil); err != nil {
			status = "degraded"
		}

		applications, _ := container.ApplicationService.Count(c.Context())
		jobs, _ := container.JobService.Count(c.Context())

		return c.JSON(fiber.Map{
			"status":             status,
			"applications_count": applications,
			"jobs_count":         jobs,
		})
	})

	// 6. Register Routes

	// Admin session: /admin/login
	adminauth.RegisterRoutes(app, container.AuthHandlers)

	// Applications: /apply, /uploads/resumes/*, /admin/applications...
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers,
		container.AuthMiddleware, container.QueryAuthMiddleware)

	// Jobs: /jobs, /admin/jobs...
	jobapi.RegisterRoutes(app, container.JobHandlers, container.AuthMiddleware)

	// 7. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", container.Config.Port)
		if err := app.Listen(":" + container.Config.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
