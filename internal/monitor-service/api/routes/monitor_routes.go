package routes

import (
	"VPS_Fleet_Monitor/internal/monitor-service/api/handler"
	"VPS_Fleet_Monitor/internal/monitor-service/ws"
	"VPS_Fleet_Monitor/pkg/middleware"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetUpMonitorRoutes(r *gin.Engine, h handler.MonitorHandler, wsHandler *ws.Handler, m middleware.AuthMiddleware) {
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/ws", wsHandler.ServeWS())

	api := r.Group("/api")
	serverRoutes := api.Group("/servers")
	serverRoutes.GET("", h.GetServers())
	serverRoutes.POST("", m.RequireSecret(), h.CreateOrUpdateServer())
	serverRoutes.POST("/import", m.RequireSecret(), h.ImportServersFromExcelFile())
	serverRoutes.GET("/export", h.ExportServersToExcelFile())
	serverRoutes.GET("/:name", h.GetServer())
	serverRoutes.PATCH("/:name", m.RequireSecret(), h.UpdateServer())
	serverRoutes.DELETE("/:name", m.RequireSecret(), h.DeleteServer())
	serverRoutes.POST("/:name/data", m.RequireSecret(), h.ReceiveMonitorData())
	serverRoutes.POST("/:name/monitor", m.RequireSecret(), h.TriggerMonitor())
	serverRoutes.POST("/:name/speedtest", m.RequireSecret(), h.RunConnectivityTest())
	serverRoutes.GET("/:name/history", h.GetMonitorHistory())
	serverRoutes.GET("/:name/connectivity", h.GetConnectivityResults())

	configRoutes := api.Group("/config", m.RequireSecret())
	configRoutes.GET("/:key", h.GetConfig())
	configRoutes.PUT("/:key", h.SetConfig())
}
