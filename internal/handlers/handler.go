package handlers

import (
	"embed"
	"html/template"

	"ocs_dashboard/internal/logger"
	"ocs_dashboard/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//go:embed templates/*.html
var templateFS embed.FS

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.accessLog)
	router.SetHTMLTemplate(template.Must(
		template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html"),
	))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerPageRoutes(router)
	h.registerAPIRoutes(router)

	// Fleet feed over WebSocket, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	r.GET("/", h.overviewPage)
	r.GET("/twin", h.twinPage)

	twin := r.Group("/twin/:key")
	{
		twin.POST("/load", h.submitLoad)
		twin.POST("/maintenance", h.submitMaintenance)
		twin.POST("/failure", h.submitFailure)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerAssetRoutes(api)
		h.registerEventRoutes(api)
		h.registerTelemetryRoutes(api)
	}
}

func (h *Handler) registerAssetRoutes(api *gin.RouterGroup) {
	assets := api.Group("/assets")
	{
		assets.GET("", h.listAssets)
		assets.GET("/:key", h.getAsset)
		// Body example: {"load_factor":1.2}
		assets.POST("/:key/load", h.setLoadFactor)
		assets.POST("/:key/maintenance", h.performMaintenance)
		assets.POST("/:key/failure", h.triggerFailure)
	}
}

func (h *Handler) registerEventRoutes(api *gin.RouterGroup) {
	api.GET("/events", h.getEvents)
}

func (h *Handler) registerTelemetryRoutes(api *gin.RouterGroup) {
	tel := api.Group("/telemetry")
	{
		tel.GET("/energy", h.getEnergy)
		tel.GET("/maintenance-alerts", h.getMaintenanceAlerts)
		tel.GET("/security-events", h.getSecurityEvents)
	}
}
