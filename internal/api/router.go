package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/config"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/handler"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/middleware"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, routes *service.RouteService, stations *service.StationService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	routeHandler := handler.NewRouteHandler(routes)
	stationHandler := handler.NewStationHandler(stations)

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		status := "ok"
		if _, err := routes.Graph(); err != nil {
			status = "loading"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  status,
			"message": "Delhi Metro route API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	{
		api.GET("/stations", stationHandler.GetStations)
		api.GET("/lines", stationHandler.GetLines)
		api.GET("/route", routeHandler.GetRoute)
		api.POST("/reload", routeHandler.Reload)
	}

	return r
}
