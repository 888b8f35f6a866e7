package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/electroleed/project-office/docs"
	"github.com/electroleed/project-office/internal/api/handler"
	"github.com/electroleed/project-office/internal/api/middleware"
	"github.com/electroleed/project-office/internal/core/service"
	mongodb "github.com/electroleed/project-office/internal/infrastructure/db/mongo"
	redisdb "github.com/electroleed/project-office/internal/infrastructure/db/redis"
	"github.com/electroleed/project-office/internal/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The request gate and authorization policy run globally, in that order, so
// every route is authenticated once and gated by the path-prefix rule table
// before any handler executes.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *security.Codec, loginAttemptLimit int64, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Repositories ---
	credRepo := mongodb.NewCredentialRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	estimateRepo := mongodb.NewEstimateRepository(db)
	scheduleRepo := mongodb.NewScheduleRepository(db)

	// --- Services ---
	authService := service.NewAuthService(credRepo, codec, log)
	accountService := service.NewAccountService(credRepo, employeeRepo, log)
	employeeService := service.NewEmployeeService(employeeRepo, log)
	projectService := service.NewProjectService(projectRepo, employeeRepo, log)
	estimateService := service.NewEstimateService(estimateRepo, projectRepo, log)
	scheduleService := service.NewScheduleService(scheduleRepo, projectRepo, log)

	// --- Handlers ---
	var throttle handler.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, loginAttemptLimit)
	}
	authHandler := handler.NewAuthHandler(authService, throttle)
	accountHandler := handler.NewAccountHandler(accountService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	projectHandler := handler.NewProjectHandler(projectService)
	estimateHandler := handler.NewEstimateHandler(estimateService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("project_office"))
	e.Use(middleware.Gate(codec, security.NewResolver(credRepo)))
	e.Use(middleware.Enforce(middleware.DefaultPolicy()))

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/web/auth/login", authHandler.LoginPage)
	e.GET("/web/auth/about_author", authHandler.AboutAuthor)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Authenticated self-service ---
	e.GET("/userPage/info", accountHandler.Info)

	// --- Admin: full CRUD over every entity ---
	admin := e.Group("/admin")
	admin.POST("/register", authHandler.Register)
	admin.GET("/users", accountHandler.List)
	admin.GET("/users/:login", accountHandler.Get)
	admin.PUT("/users/:login", accountHandler.Update)
	admin.DELETE("/users/:login", accountHandler.Delete)
	mountEmployees(admin, employeeHandler)
	mountProjects(admin, projectHandler, true)
	mountEstimates(admin, estimateHandler, true)
	mountSchedules(admin, scheduleHandler, true)

	// --- Estimator: estimates CRUD, projects read-only ---
	estimator := e.Group("/estimator")
	mountEstimates(estimator, estimateHandler, true)
	mountProjects(estimator, projectHandler, false)

	// --- Scheduler: schedules CRUD, projects read-only ---
	scheduler := e.Group("/scheduler")
	mountSchedules(scheduler, scheduleHandler, true)
	mountProjects(scheduler, projectHandler, false)

	// --- Project manager: projects CRUD, estimates/schedules read-only ---
	manager := e.Group("/project_manager")
	mountProjects(manager, projectHandler, true)
	mountEstimates(manager, estimateHandler, false)
	mountSchedules(manager, scheduleHandler, false)

	// --- Project member: read-only views ---
	member := e.Group("/project_member")
	mountProjects(member, projectHandler, false)
	mountSchedules(member, scheduleHandler, false)

	return e
}

func mountEmployees(g *echo.Group, h *handler.EmployeeHandler) {
	g.GET("/employees", h.List)
	g.GET("/employees/:id", h.Get)
	g.POST("/employees", h.Create)
	g.PUT("/employees/:id", h.Update)
	g.DELETE("/employees/:id", h.Delete)
}

func mountProjects(g *echo.Group, h *handler.ProjectHandler, write bool) {
	g.GET("/projects", h.List)
	g.GET("/projects/:id", h.Get)
	if write {
		g.POST("/projects", h.Create)
		g.PUT("/projects/:id", h.Update)
		g.DELETE("/projects/:id", h.Delete)
	}
}

func mountEstimates(g *echo.Group, h *handler.EstimateHandler, write bool) {
	g.GET("/estimates", h.List)
	g.GET("/estimates/:id", h.Get)
	if write {
		g.POST("/estimates", h.Create)
		g.PUT("/estimates/:id", h.Update)
		g.DELETE("/estimates/:id", h.Delete)
	}
}

func mountSchedules(g *echo.Group, h *handler.ScheduleHandler, write bool) {
	g.GET("/schedules", h.List)
	g.GET("/schedules/:id", h.Get)
	if write {
		g.POST("/schedules", h.Create)
		g.PUT("/schedules/:id", h.Update)
		g.DELETE("/schedules/:id", h.Delete)
	}
}
