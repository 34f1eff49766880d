package router

import (
	"github.com/Guducat/SaToken-FastStart/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	api.POST("/user/login", authLimiter, h.Login)
	api.POST("/user/register", authLimiter, h.Register)
	api.GET("/user/is-login", h.IsLogin)

	// 找回密码两步流程
	api.POST("/user/verify-identity", authLimiter, h.VerifyIdentity)
	api.POST("/user/reset-password", authLimiter, h.ResetPassword)

	api.GET("/captcha", h.GetCaptcha)
}
