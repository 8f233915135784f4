package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты граждан
	problems := api.Group("/problems")
	{
		problems.POST("", h.createProblem)
		problems.GET("", h.listProblems)
		problems.GET("/:id", h.getProblem)
		problems.POST("/:id/view", h.viewProblem)
		problems.POST("/:id/support", h.supportProblem)
		problems.POST("/:id/share", h.shareProblem)
	}

	// Маршруты администрации, требуют API-ключ
	admin := api.Group("/problems", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.POST("/:id/transitions", h.transitionProblem)
		admin.PUT("/:id/priority", h.retriageProblem)
		admin.PATCH("/:id", h.updateProblem)
		admin.POST("/:id/triage", h.triageProblem)
	}

	photos := api.Group("/photos")
	{
		photos.POST("", h.uploadPhoto)
		photos.GET("/:id", h.getPhoto)
	}

	api.GET("/metrics", h.getMetrics)
	api.GET("/departments", h.listDepartments)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
