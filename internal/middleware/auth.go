package middleware

import (
	"net/http"
	"strings"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth 解析并校验 Bearer Token，将用户身份写入请求上下文。
// 未携带或无效时直接以 401 中断，后续处理器不再执行。
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminCheck 校验当前用户角色，仅放行管理员。必须位于 JWTAuth 之后。
func AdminCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exist := c.Get("role")
		role, ok := value.(string)
		if !exist || !ok || role != consts.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "需要管理员权限才能访问"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 从请求上下文取出登录用户 ID，未登录时第二个返回值为 false。
func CurrentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("id")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
