package service

import (
	repo "github.com/Guducat/SaToken-FastStart/internal/repository"
)

type AccountService struct {
	users  repo.UserStore
	tokens *ResetTokenRegistry
}

type AuthService struct{}

type CaptchaService struct{}

func NewAccountService(users repo.UserStore, tokens *ResetTokenRegistry) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

func NewAuthService() *AuthService {
	return &AuthService{}
}

func NewCaptchaService() *CaptchaService {
	return &CaptchaService{}
}
