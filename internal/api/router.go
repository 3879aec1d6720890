package api

import (
	"github.com/gin-gonic/gin"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/api/handler"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/api/middleware"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/config"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/logger"
	"github.com/kongx-dev/retailstar-sol-sub001/internal/service"
	"gorm.io/gorm"
)

// Dependencies are the services behind the HTTP API. DB, Exporter storage and
// SNS are optional.
type Dependencies struct {
	DB         *gorm.DB
	Appraisals *service.AppraisalService
	Exporter   *service.CardExporter
	SNS        *service.SNSClient
	Logger     *logger.Logger
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(deps *Dependencies, cfg *config.ServerConfig) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	log := deps.Logger
	if log == nil {
		log = logger.GetDefault()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.CORS.AllowAllOrigins,
	}))

	healthHandler := handler.NewHealthHandler(deps.DB, deps.Exporter.Enabled(), deps.SNS != nil)
	appraisalHandler := handler.NewAppraisalHandler(deps.Appraisals, deps.Exporter)
	domainHandler := handler.NewDomainHandler(deps.SNS)

	r.GET("/health", healthHandler.Health)

	v1 := r.Group("/api/v1")
	{
		// Appraisal
		v1.POST("/appraise", appraisalHandler.Appraise)
		v1.POST("/appraise/batch", appraisalHandler.AppraiseBatch)
		v1.GET("/appraise/:name", appraisalHandler.Preview)
		v1.GET("/appraise/:name/card", appraisalHandler.Card)
		v1.POST("/appraise/:name/card/export", appraisalHandler.ExportCard)
		v1.GET("/appraise/:name/report", appraisalHandler.Report)

		// History
		v1.GET("/appraisals", appraisalHandler.ListAppraisals)
		v1.GET("/appraisals/:id", appraisalHandler.GetAppraisal)
		v1.DELETE("/appraisals/:id", appraisalHandler.DeleteAppraisal)
		v1.GET("/batches/:id", appraisalHandler.GetBatch)
		v1.GET("/stats", appraisalHandler.Stats)

		v1.GET("/categories", appraisalHandler.Categories)

		v1.GET("/domains/:name/owner", domainHandler.Owner)
	}

	return r
}
