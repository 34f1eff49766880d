package handler

import (
	"github.com/Guducat/SaToken-FastStart/internal/service"
)

type Handler struct {
	account *service.AccountService
	auth    *service.AuthService
	captcha *service.CaptchaService
}

func NewHandler(account *service.AccountService, auth *service.AuthService, captcha *service.CaptchaService) *Handler {
	return &Handler{
		account: account,
		auth:    auth,
		captcha: captcha,
	}
}
