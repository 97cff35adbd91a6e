package http

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Stepka365/gym-tracker/docs"
	"github.com/Stepka365/gym-tracker/internal/adapters/handler/http/middleware"
	"github.com/Stepka365/gym-tracker/internal/core/domain"
)

type RouterDependencies struct {
	MemberHandler   *MemberHandler
	ConfigHandler   *ConfigHandler
	TrackingHandler *TrackingHandler
	LoadHandler     *LoadHandler
	ReportHandler   *ReportHandler

	DataDir        string
	RateLimitRPS   float64
	RateLimitBurst int
	StartTime      time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	registerTimeslotValidator()

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if deps.RateLimitRPS > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.RateLimitRPS, deps.RateLimitBurst))
	}

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		storageStatus := "ok"
		statusCode := http.StatusOK
		if info, err := os.Stat(deps.DataDir); err != nil || !info.IsDir() {
			storageStatus = "unreachable"
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":  "ok",
			"storage": storageStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	root := router.Group("/")
	deps.MemberHandler.RegisterRoutes(root)
	deps.ConfigHandler.RegisterRoutes(root)
	deps.TrackingHandler.RegisterRoutes(root)
	deps.LoadHandler.RegisterRoutes(root)
	deps.ReportHandler.RegisterRoutes(root)

	return router
}

// registerTimeslotValidator teaches gin's binding engine the "timeslot"
// tag used on time query params. Safe to call more than once.
func registerTimeslotValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseClock(fl.Field().String())
			return err == nil
		})
	}
}
