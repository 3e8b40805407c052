package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/listkeep/todo-system/internal/api/handler"
	"github.com/listkeep/todo-system/internal/api/middleware"
	"github.com/listkeep/todo-system/internal/core/service"
	"github.com/listkeep/todo-system/internal/infrastructure/db/postgres"
	"github.com/listkeep/todo-system/internal/infrastructure/db/redis"
)

// Options carries the router's tunables.
type Options struct {
	SessionSecret string
	SessionTTL    time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("todo"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	listRepo := postgres.NewListRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	sessions := redis.NewSessionStore(rdb, opts.SessionTTL)

	recorder := service.NewActivityRecorder(activityRepo, log)
	authService := service.NewAuthService(userRepo, recorder, log)
	listService := service.NewListService(listRepo, userRepo, recorder, log)
	taskService := service.NewTaskService(taskRepo, listRepo, recorder, log)
	activityService := service.NewActivityService(activityRepo, recorder, log)

	authHandler := handler.NewAuthHandler(authService, sessions, opts.SessionSecret, opts.SessionTTL)
	listHandler := handler.NewListHandler(listService)
	taskHandler := handler.NewTaskHandler(taskService)
	activityHandler := handler.NewActivityHandler(activityService)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Protected routes ---
	auth := e.Group("", middleware.Session(opts.SessionSecret, sessions))
	auth.GET("/", listHandler.Dashboard)
	auth.GET("/logout", authHandler.Logout)
	auth.GET("/create_list", listHandler.CreateForm)
	auth.POST("/create_list", listHandler.Create)
	auth.GET("/list/:list_id", listHandler.View)
	auth.GET("/list/:list_id/delete", listHandler.Delete)
	auth.POST("/list/:list_id/task/add", taskHandler.Add)
	auth.POST("/task/:task_id/toggle", taskHandler.Toggle)
	auth.GET("/task/:task_id/delete", taskHandler.Delete)
	auth.GET("/logs", activityHandler.Logs)

	return e
}
