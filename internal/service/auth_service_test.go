package service

import (
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
	"github.com/Guducat/SaToken-FastStart/internal/model"
	"github.com/Guducat/SaToken-FastStart/internal/utils"
)

func TestIssueLoginToken(t *testing.T) {
	auth := NewAuthService()
	user := &model.User{Username: "alice", Role: consts.RoleUser}
	user.ID = 42

	info, err := auth.IssueLoginToken(user)
	if err != nil {
		t.Fatalf("IssueLoginToken: %v", err)
	}
	if info.TokenName != "Authorization" {
		t.Fatalf("unexpected token name %q", info.TokenName)
	}
	if info.LoginID != 42 {
		t.Fatalf("unexpected login id %d", info.LoginID)
	}

	claims, err := utils.ParseLoginToken(info.TokenValue)
	if err != nil {
		t.Fatalf("ParseLoginToken: %v", err)
	}
	if claims.ID != 42 || claims.Username != "alice" || claims.Role != consts.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}
