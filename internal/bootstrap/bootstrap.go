package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/emrekoc/studentdesk/internal/app/controllers"
	appMigrations "github.com/emrekoc/studentdesk/internal/app/migrations"
	appRepos "github.com/emrekoc/studentdesk/internal/app/repositories"
	appRoutes "github.com/emrekoc/studentdesk/internal/app/routes"
	appServices "github.com/emrekoc/studentdesk/internal/app/services"
	"github.com/emrekoc/studentdesk/internal/config"
	"github.com/emrekoc/studentdesk/internal/db"
	appMiddleware "github.com/emrekoc/studentdesk/internal/middleware"
	"github.com/emrekoc/studentdesk/internal/pkg/logger"
)

// Dependencies holds the wired application object graph
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	StudentController   *appControllers.StudentController
	OrderController     *appControllers.OrderController
	UserController      *appControllers.UserController
	ProductController   *appControllers.ProductController
	CategoryController  *appControllers.CategoryController
	ReviewController    *appControllers.ReviewController
	CourseController    *appControllers.CourseController
	DashboardController *appControllers.DashboardController

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
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

// SetupDatabase establishes the connection pool and runs migrations
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return database, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(database)
	svcs := appServices.NewServices(repos)

	return &Dependencies{
		Repos:    repos,
		Services: svcs,

		StudentController:   appControllers.NewStudentController(svcs.Student),
		OrderController:     appControllers.NewOrderController(svcs.Order),
		UserController:      appControllers.NewUserController(svcs.User),
		ProductController:   appControllers.NewProductController(svcs.Product),
		CategoryController:  appControllers.NewCategoryController(svcs.Category),
		ReviewController:    appControllers.NewReviewController(svcs.Review),
		CourseController:    appControllers.NewCourseController(svcs.Course),
		DashboardController: appControllers.NewDashboardController(svcs.Dashboard),

		Logger: lgr,
	}
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		gin.Recovery(),
	)

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.OrderController,
		deps.UserController,
		deps.ProductController,
		deps.CategoryController,
		deps.ReviewController,
		deps.CourseController,
		deps.DashboardController,
	)

	return router
}
