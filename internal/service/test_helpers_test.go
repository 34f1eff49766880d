package service

import (
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/model"
	"github.com/Guducat/SaToken-FastStart/internal/repository"
	"github.com/Guducat/SaToken-FastStart/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testStore   repository.UserStore
	testTokens  *ResetTokenRegistry
	testAccount *AccountService
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := testutils.SetupDB(t)
	testStore = repository.NewUserRepository(gdb)
	testTokens = NewResetTokenRegistry()
	testAccount = NewAccountService(testStore, testTokens)
	return gdb
}

// mustCreateUser 直接写库造一个已注册用户，绕过注册流程的校验。
func mustCreateUser(t *testing.T, username, password, email string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	user := &model.User{
		Username: username,
		Password: string(hashed),
		Role:     consts.RoleUser,
	}
	if email != "" {
		user.Email = &email
	}
	if err := testStore.Create(user); err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return user
}

func mustCreateAdmin(t *testing.T, username, password string) *model.User {
	t.Helper()

	user := mustCreateUser(t, username, password, "")
	user.Role = consts.RoleAdmin
	if err := testStore.Save(user); err != nil {
		t.Fatalf("promote admin %q: %v", username, err)
	}
	return user
}
