package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/studypal/core/internal/config"
	"github.com/studypal/core/internal/database"
	"github.com/studypal/core/internal/middleware"
	"github.com/studypal/core/internal/pkg/jwt"
	pkgredis "github.com/studypal/core/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router *gin.Engine
	db     *gorm.DB
	rc     *pkgredis.Client
	logger *zap.Logger
}

// New initializes the application: config → DB → Redis → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	jwt.SetSecret(cfg.JWTSecret)

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// Redis is optional; without it the quota falls back to process memory.
	var rc *pkgredis.Client
	if cfg.RedisURL != "" {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.WithRequestID())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))

	app := &App{cfg: cfg, router: router, db: db, rc: rc, logger: logger}
	app.registerRoutes()
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases held connections.
func (a *App) Shutdown() {
	if a.rc != nil {
		a.rc.Close()
	}
}

func corsConfig(cfg *config.AppConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		c.AllowOrigins = cfg.AllowedOrigins
	} else {
		c.AllowOriginFunc = func(string) bool { return true }
	}
	return c
}
