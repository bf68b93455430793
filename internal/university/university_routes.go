package university

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	universities := r.Group("/universities")
	{
		universities.GET("", handler.GetAll)
		universities.GET("/:id", handler.GetByID)
		universities.POST("", handler.Create)
		universities.PUT("/:id", handler.Update)
		universities.DELETE("/:id", handler.Delete)
	}
}
