package handler

import (
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/model"
	"github.com/Guducat/SaToken-FastStart/internal/repository"
	"github.com/Guducat/SaToken-FastStart/internal/service"
	"github.com/Guducat/SaToken-FastStart/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testStore   repository.UserStore
	testTokens  *service.ResetTokenRegistry
	testAccount *service.AccountService
	testHandler *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	testStore = repository.NewUserRepository(gdb)
	testTokens = service.NewResetTokenRegistry()
	testAccount = service.NewAccountService(testStore, testTokens)
	testHandler = NewHandler(testAccount, service.NewAuthService(), service.NewCaptchaService())
	return gdb
}

func mustCreateUser(t *testing.T, username, password, email, role string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &model.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if user.Role == "" {
		user.Role = consts.RoleUser
	}
	if email != "" {
		user.Email = &email
	}
	if err := testStore.Create(user); err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}
