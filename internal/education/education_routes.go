package education

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	educations := r.Group("/educations")
	{
		educations.GET("", handler.GetAll)
		educations.GET("/:id", handler.GetByID)
		educations.POST("", handler.Create)
		educations.PUT("/:id", handler.Update)
		educations.DELETE("/:id", handler.Delete)
	}
}
