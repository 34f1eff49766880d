package service

import (
	"github.com/Guducat/SaToken-FastStart/internal/config"
	"github.com/Guducat/SaToken-FastStart/internal/utils"
)

// Enabled 验证码开关（默认关闭）
func (s *CaptchaService) Enabled() bool {
	return config.Get().Captcha.Enabled
}

// NewChallenge 生成一个数字验证码，返回验证码 ID 和图片 base64
func (s *CaptchaService) NewChallenge() (string, string, error) {
	id, b64s, _, err := utils.MakeCaptcha()
	return id, b64s, err
}

// VerifyChallenge 校验验证码答案。验证码未启用时直接放行。
func (s *CaptchaService) VerifyChallenge(id, answer string) (bool, string) {
	if !s.Enabled() {
		return true, ""
	}
	if id == "" || answer == "" {
		return false, "请完成验证码"
	}
	if !utils.VerifyCaptcha(id, answer) {
		return false, "验证码错误或已过期"
	}
	return true, ""
}
