package handler

import (
	"net/http"

	"github.com/Guducat/SaToken-FastStart/internal/service"

	"github.com/gin-gonic/gin"
)

// Login 用户登录接口，账号可以是用户名或邮箱
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username      string `json:"username" binding:"required"`
		Password      string `json:"password" binding:"required"`
		CaptchaID     string `json:"captcha_id"`
		CaptchaAnswer string `json:"captcha_answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	if verified, msg := h.captcha.VerifyChallenge(req.CaptchaID, req.CaptchaAnswer); !verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := h.account.Login(req.Username, req.Password)
	if err != nil {
		writeServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	tokenInfo, err := h.auth.IssueLoginToken(user)
	if err != nil {
		writeServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "登录成功",
		"data":    tokenInfo,
	})
}

// Register 用户注册接口，注册成功后自动登录
func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Username        string `json:"username" binding:"required"`
		Nickname        string `json:"nickname"`
		Email           string `json:"email"`
		AvatarURL       string `json:"avatar_url"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
		CaptchaID       string `json:"captcha_id"`
		CaptchaAnswer   string `json:"captcha_answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	// 密码确认在 API 层完成，服务层只接收已确认的密码
	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "两次输入的密码不一致"})
		return
	}

	if verified, msg := h.captcha.VerifyChallenge(req.CaptchaID, req.CaptchaAnswer); !verified {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := h.account.Register(service.RegisterInput{
		Username:  req.Username,
		Nickname:  req.Nickname,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	// 注册成功后自动登录
	tokenInfo, err := h.auth.IssueLoginToken(user)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "注册成功，但自动登录失败，请手动登录"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "注册成功",
		"data":    tokenInfo,
	})
}

// VerifyIdentity 找回密码第一步：校验用户名与邮箱是否匹配。
// 匹配成功返回用户 ID 和重置令牌（线上部署应改为邮件送达）。
func (h *Handler) VerifyIdentity(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "用户名和邮箱不能为空"})
		return
	}

	user, token, err := h.account.VerifyIdentity(req.Username, req.Email)
	if err != nil {
		writeServiceError(c, err, "身份验证失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"user_id":     user.ID,
			"reset_token": token,
		},
	})
}

// ResetPassword 找回密码第二步：携带令牌重置密码
func (h *Handler) ResetPassword(c *gin.Context) {
	var req struct {
		UserID          uint   `json:"user_id" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
		Token           string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数不完整"})
		return
	}

	if req.NewPassword != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "两次输入的密码不一致"})
		return
	}

	if err := h.account.ResetPassword(req.UserID, req.NewPassword, req.Token); err != nil {
		writeServiceError(c, err, "密码重置失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "密码重置成功"})
}

// GetCaptcha 获取验证码。验证码未启用时提示前端无需携带。
func (h *Handler) GetCaptcha(c *gin.Context) {
	if !h.captcha.Enabled() {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	id, image, err := h.captcha.NewChallenge()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "验证码生成失败"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enabled":       true,
		"captcha_id":    id,
		"captcha_image": image,
	})
}
