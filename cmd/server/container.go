package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/jobportal/pkg/config"
	"github.com/talentgate/jobportal/pkg/fsx"
	"github.com/talentgate/jobportal/pkg/fsx/fsxlocal"
	"github.com/talentgate/jobportal/pkg/logx"
	"github.com/talentgate/jobportal/portal/adminauth"
	"github.com/talentgate/jobportal/portal/application/applicationapi"
	"github.com/talentgate/jobportal/portal/application/applicationinfra"
	"github.com/talentgate/jobportal/portal/application/applicationsrv"
	"github.com/talentgate/jobportal/portal/job/jobapi"
	"github.com/talentgate/jobportal/portal/job/jobinfra"
	"github.com/talentgate/jobportal/portal/job/jobsrv"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config config.Config

	// Infrastructure
	Mongo      *mongo.Client
	DB         *mongo.Database
	FileSystem fsx.FileSystem

	// Services
	TokenService       *adminauth.TokenService
	AuthService        *adminauth.AuthService
	ApplicationService *applicationsrv.ApplicationService
	JobService         *jobsrv.JobService

	// API Handlers
	AuthHandlers        *adminauth.Handlers
	ApplicationHandlers *applicationapi.Handlers
	JobHandlers         *jobapi.Handlers

	// Middleware
	AuthMiddleware      fiber.Handler
	QueryAuthMiddleware fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initRepositories()
	return c
}

func (c *Container) initInfrastructure() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}
	c.Config = cfg

	// 1. MongoDB Connection
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.ConnectionString()))
	if err != nil {
		logx.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		logx.Fatalf("Failed to ping MongoDB: %v", err)
	}

	c.Mongo = client
	c.DB = client.Database(cfg.MongoDatabase)

	// 2. Resume File Store
	files, err := fsxlocal.NewLocalFileSystem(cfg.UploadDir)
	if err != nil {
		logx.Fatalf("Failed to initialize upload directory: %v", err)
	}
	c.FileSystem = files
}

func (c *Container) initRepositories() {
	// --- Repositories ---
	applicationRepo := applicationinfra.NewMongoApplicationRepository(c.DB)
	jobRepo := jobinfra.NewMongoJobRepository(c.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := applicationRepo.EnsureIndexes(ctx); err != nil {
		logx.Warnf("Failed to create application indexes: %v", err)
	}
	if err := jobRepo.EnsureIndexes(ctx); err != nil {
		logx.Warnf("Failed to create job indexes: %v", err)
	}

	// --- Services ---
	c.TokenService = adminauth.NewTokenService(c.Config.SecretKey, c.Config.TokenTTL)
	c.AuthService = adminauth.NewAuthService(c.TokenService, c.Config.AdminUsername, c.Config.AdminPassword)
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, c.FileSystem)
	c.JobService = jobsrv.NewJobService(jobRepo)

	// --- Handlers ---
	c.AuthHandlers = adminauth.NewHandlers(c.AuthService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)

	// --- Middleware ---
	c.AuthMiddleware = adminauth.Middleware(c.TokenService)
	c.QueryAuthMiddleware = adminauth.MiddlewareAllowQueryToken(c.TokenService)
}
