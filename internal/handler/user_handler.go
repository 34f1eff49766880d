package handler

import (
	"net/http"
	"strings"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/middleware"
	"github.com/Guducat/SaToken-FastStart/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetSelfInfo 获取当前登录用户信息
func (h *Handler) GetSelfInfo(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户ID失败"})
		return
	}

	profile, err := h.account.GetProfile(uid)
	if err != nil {
		writeServiceError(c, err, "获取用户信息失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateSelfInfo 更新当前登录用户的昵称、邮箱、头像。
// 昵称/邮箱传空表示不修改；avatar_url 字段缺省表示不修改，传空串会清空头像。
func (h *Handler) UpdateSelfInfo(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户ID失败"})
		return
	}

	var req struct {
		Nickname  string  `json:"nickname"`
		Email     string  `json:"email"`
		AvatarURL *string `json:"avatar_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if err := h.account.UpdateUserInfo(uid, req.Nickname, req.Email, req.AvatarURL); err != nil {
		writeServiceError(c, err, "用户信息更新失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "用户信息更新成功"})
}

// IsLogin 查询当前会话的登录状态（公开接口，token 缺失或无效均返回 false）
func (h *Handler) IsLogin(c *gin.Context) {
	isLogin := false
	authHeader := c.GetHeader("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
		if _, err := utils.ParseLoginToken(parts[1]); err == nil {
			isLogin = true
		}
	}

	c.JSON(http.StatusOK, gin.H{"is_login": isLogin})
}

// IsAdmin 查询当前登录用户是否管理员
func (h *Handler) IsAdmin(c *gin.Context) {
	value, _ := c.Get("role")
	role, _ := value.(string)

	c.JSON(http.StatusOK, gin.H{"is_admin": role == consts.RoleAdmin})
}

// DeleteAccount 注销当前登录用户账户。
// 此操作将永久删除用户记录，不可逆，前端需多次确认后才调用。
func (h *Handler) DeleteAccount(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户ID失败"})
		return
	}

	if err := h.account.DeleteAccount(uid); err != nil {
		writeServiceError(c, err, "账户注销失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "账户已成功注销"})
}
