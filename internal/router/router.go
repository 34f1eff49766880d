package router

import (
	"github.com/Guducat/SaToken-FastStart/internal/handler"
	"github.com/Guducat/SaToken-FastStart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func InitRouter(r *gin.Engine, h *handler.Handler) {
	api := r.Group("/api")

	// 认证限流：在多个域路由中复用同一个实例，保持行为一致
	authLimiter := middleware.RateLimitMiddleware()

	registerAuthRoutes(api, authLimiter, h)
	registerUserRoutes(api, h)
	registerAdminRoutes(api, h)
}
