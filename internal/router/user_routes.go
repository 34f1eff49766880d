package router

import (
	"github.com/Guducat/SaToken-FastStart/internal/handler"
	"github.com/Guducat/SaToken-FastStart/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())

	userGroup.GET("/info", h.GetSelfInfo)
	userGroup.PATCH("/info", h.UpdateSelfInfo)
	userGroup.GET("/is-admin", h.IsAdmin)
	userGroup.DELETE("/account", h.DeleteAccount)
}
