package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cruise_insights/backend/internal/ai"
	"github.com/cruise_insights/backend/internal/assistant"
	"github.com/cruise_insights/backend/internal/config"
	"github.com/cruise_insights/backend/internal/dataset"
	"github.com/cruise_insights/backend/internal/http/handlers"
	"github.com/cruise_insights/backend/internal/http/middleware"
	"github.com/cruise_insights/backend/internal/query"

	_ "github.com/cruise_insights/backend/docs"
)

func Router(cfg config.Config, data *dataset.Dataset, router *assistant.Router, enhancer *ai.Enhancer, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Data:      data,
		Engine:    query.NewEngine(data),
		Router:    router,
		Enhancer:  enhancer,
		Validator: validator.New(),
		Logger:    logger,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/chat", h.Chat)
		api.GET("/insights", h.InsightsList)
		api.POST("/insights/:id/response", h.InsightResponse)
		api.POST("/audience/preview", h.AudiencePreview)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
