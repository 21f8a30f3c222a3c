package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/studypal/core/internal/middleware"
	"github.com/studypal/core/internal/modules/auth"
	"github.com/studypal/core/internal/modules/billing"
	"github.com/studypal/core/internal/modules/generate"
	"github.com/studypal/core/internal/modules/history"
	"github.com/studypal/core/internal/modules/quota"
	"github.com/studypal/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	api := r.Group("/api")
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})

	historySvc := history.NewService(a.db, a.logger)
	genSvc := generate.NewService(
		historySvc,
		a.newUsageStore(),
		generate.NewCompleter(a.cfg.AI),
		a.logger,
		time.Duration(a.cfg.AI.TimeoutSeconds)*time.Second,
	)

	generate.NewHandler(genSvc, a.logger).RegisterRoutes(api)
	history.NewHandler(historySvc).RegisterRoutes(api)
	auth.NewHandler(auth.NewService(a.db), a.logger).RegisterRoutes(api)
	billing.NewHandler(a.db, a.logger).RegisterRoutes(api, middleware.Auth())
}

// newUsageStore selects the quota backend. Redis shares counters across
// instances; memory is single-process and lost on restart.
func (a *App) newUsageStore() quota.Store {
	if a.cfg.Quota.Backend == "redis" && a.rc != nil {
		return quota.NewRedisStore(a.rc.Raw(), a.cfg.Quota.DailyLimit)
	}
	return quota.NewMemoryStore(a.cfg.Quota.DailyLimit)
}
