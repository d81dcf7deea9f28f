package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/controller"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/service"
	"skillsync_backend/pkg/database"
	"skillsync_backend/pkg/logger"
	"skillsync_backend/pkg/monitoring"
	"skillsync_backend/pkg/security"
	"skillsync_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	interest     *repository.InterestRepository
	skill        *repository.SkillRepository
	roadmap      *repository.RoadmapRepository
	enrollment   *repository.EnrollmentRepository
	progress     *repository.ProgressRepository
	badge        *repository.BadgeRepository
	comment      *repository.CommentRepository
	notification *repository.NotificationRepository
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	skill       *service.SkillService
	progress    *service.ProgressService
	roadmap     *service.RoadmapService
	achievement *service.AchievementService
	dashboard   *service.DashboardService
	user        *service.UserService
	community   *service.CommunityService
}

type controllers struct {
	auth        *controller.AuthController
	skill       *controller.SkillController
	roadmap     *controller.RoadmapController
	achievement *controller.AchievementController
	dashboard   *controller.DashboardController
	user        *controller.UserController
	community   *controller.CommunityController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig swaps in a freshly loaded config. Services holding the
// config keep reading live values (reward amounts, JWT expiry) through
// their pointer.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	a.services.auth.Cfg = cfg
	a.services.progress.Cfg = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		interest:     repository.NewInterestRepository(db),
		skill:        repository.NewSkillRepository(db),
		roadmap:      repository.NewRoadmapRepository(db),
		enrollment:   repository.NewEnrollmentRepository(db),
		progress:     repository.NewProgressRepository(db),
		badge:        repository.NewBadgeRepository(db),
		comment:      repository.NewCommentRepository(db),
		notification: repository.NewNotificationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.badge, cfg)
	s.skill = service.NewSkillService(repos.skill, repos.enrollment, repos.progress)
	s.progress = service.NewProgressService(repos.skill, repos.progress, repos.enrollment, repos.roadmap, repos.badge, repos.user, cfg, db)
	s.roadmap = service.NewRoadmapService(repos.roadmap, repos.enrollment)
	s.achievement = service.NewAchievementService(repos.user, repos.badge, repos.notification, rdb)
	s.dashboard = service.NewDashboardService(repos.user, repos.skill, repos.enrollment, repos.progress, repos.badge)
	s.user = service.NewUserService(repos.user, repos.interest)
	s.community = service.NewCommunityService(repos.comment, repos.notification, repos.skill)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		skill:       controller.NewSkillController(s.skill, s.progress),
		roadmap:     controller.NewRoadmapController(s.roadmap),
		achievement: controller.NewAchievementController(s.achievement),
		dashboard:   controller.NewDashboardController(s.dashboard),
		user:        controller.NewUserController(s.user, s.storage),
		community:   controller.NewCommunityController(s.community),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillsync", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
