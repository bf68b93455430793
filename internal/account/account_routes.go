package account

import (
	"go-hrportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	accounts := r.Group("/accounts")
	{
		accounts.POST("/register", middleware.RateLimitByIP(0.1, 5), handler.Register)
		accounts.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		accounts.POST("/forgot-password", middleware.RateLimitByIP(0.05, 3), handler.ForgotPassword)
		accounts.POST("/change-password", middleware.RateLimitByIP(0.1, 5), handler.ChangePassword)

		accounts.GET("", handler.GetAll)
		accounts.GET("/:id", handler.GetByID)
		accounts.POST("", handler.Create)
		accounts.PUT("/:id", handler.Update)
		accounts.DELETE("/:id", handler.Delete)
	}
}
