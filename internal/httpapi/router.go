package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/config"
	"github.com/openhired/jobboard/internal/handlers"
	"github.com/openhired/jobboard/internal/middleware"
	"github.com/openhired/jobboard/internal/models"
)

// NewRouter wires gin routes and middleware.
func NewRouter(
	cfg config.Config,
	logger *zap.Logger,
	auth *middleware.Auth,
	rateLimiter *middleware.RateLimiter,
	userHandler *handlers.UserHandler,
	companyHandler *handlers.CompanyHandler,
	jobHandler *handlers.JobHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(rateLimiter.Handler())
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	anyRole := auth.RequireRoles(models.RoleUser, models.RoleCompanyHR)
	hrOnly := auth.RequireRoles(models.RoleCompanyHR)

	r.GET("/healthz", handlers.HealthCheck)

	user := r.Group("/user")
	{
		user.POST("/signup", userHandler.Signup)
		user.POST("/confirm", userHandler.Confirm)
		user.POST("/signin", userHandler.SignIn)
		user.POST("/password/forgot", userHandler.RequestPasswordReset)
		user.POST("/password/reset", userHandler.ResetPassword)
		user.GET("/profile/:id", userHandler.Profile)

		user.PATCH("/update", anyRole, userHandler.Update)
		user.PATCH("/password", anyRole, userHandler.UpdatePassword)
		user.DELETE("", anyRole, userHandler.Delete)
		user.GET("/me", anyRole, userHandler.Me)
		user.GET("/accounts", anyRole, userHandler.AccountsByRecovery)
	}

	company := r.Group("/company")
	{
		company.POST("", hrOnly, companyHandler.Add)
		company.PATCH("/:id", hrOnly, companyHandler.Update)
		company.DELETE("/:id", hrOnly, companyHandler.Delete)
		company.GET("/search", anyRole, companyHandler.Search)
		company.GET("/jobs/:id", hrOnly, companyHandler.DataAndJobs)
		company.GET("/applications/job/:jobID", hrOnly, companyHandler.ApplicationsForJob)
		company.GET("/applications/export", hrOnly, companyHandler.ExportApplications)
	}

	job := r.Group("/job")
	{
		job.POST("", hrOnly, jobHandler.Add)
		job.PATCH("/:id", hrOnly, jobHandler.Update)
		job.DELETE("/:id", hrOnly, jobHandler.Delete)
		job.GET("", anyRole, jobHandler.All)
		job.GET("/company", anyRole, jobHandler.ByCompany)
		job.GET("/filter", anyRole, jobHandler.Filter)
		job.POST("/:id/apply", anyRole, jobHandler.Apply)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":             "not_found",
			"error_description": "Route not found.",
		})
	})

	return r
}

func corsConfig(cfg config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	allowAll := false
	for _, origin := range cfg.CORSAllowOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
	}
	return corsCfg
}
