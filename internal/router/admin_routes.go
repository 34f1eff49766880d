package router

import (
	"github.com/Guducat/SaToken-FastStart/internal/handler"
	"github.com/Guducat/SaToken-FastStart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, h *handler.Handler) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.JWTAuth())
	adminGroup.Use(middleware.AdminCheck())

	adminGroup.GET("/users", h.AdminListUsers)
	adminGroup.GET("/users/:id", h.AdminGetUser)
	adminGroup.DELETE("/users/:id", h.AdminDeleteUser)
}
