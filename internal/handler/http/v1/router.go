package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/export", h.exportIncidentsCSV)
		incidents.GET("/export.geojson", h.exportIncidentsGeoJSON)
		incidents.POST("/_bulk_demo", h.seedDemoIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.updateIncidentStatus)
	}
}

// RegisterSystemRoutes регистрирует служебные маршруты вне версии API
func (h *Handler) RegisterSystemRoutes(router gin.IRoutes) {
	router.GET("/healthz", h.healthCheck)
	router.GET("/readyz", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
