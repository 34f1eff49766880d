package service

import (
	"time"

	"github.com/Guducat/SaToken-FastStart/internal/common"
	"github.com/Guducat/SaToken-FastStart/internal/config"
	"github.com/Guducat/SaToken-FastStart/internal/model"
	"github.com/Guducat/SaToken-FastStart/internal/utils"
)

// TokenInfo 登录成功后返回的会话信息
type TokenInfo struct {
	TokenName  string `json:"token_name"`
	TokenValue string `json:"token_value"`
	LoginID    uint   `json:"login_id"`
}

// IssueLoginToken 为用户签发登录令牌
func (s *AuthService) IssueLoginToken(user *model.User) (*TokenInfo, error) {
	cfg := config.Get()
	token, err := utils.GenerateLoginToken(user.ID, user.Username, user.Role, time.Hour*time.Duration(cfg.JWT.ExpirationHours))
	if err != nil {
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}

	return &TokenInfo{
		TokenName:  "Authorization",
		TokenValue: token,
		LoginID:    user.ID,
	}, nil
}
