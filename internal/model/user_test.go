package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/consts"
)

func TestUser_EmailOrEmpty(t *testing.T) {
	u := User{}
	if got := u.EmailOrEmpty(); got != "" {
		t.Fatalf("expected empty email, got %q", got)
	}

	email := "a@example.com"
	u.Email = &email
	if got := u.EmailOrEmpty(); got != "a@example.com" {
		t.Fatalf("unexpected email %q", got)
	}
}

func TestUser_AvatarOrDefault(t *testing.T) {
	u := User{}
	if got := u.AvatarOrDefault(); got != consts.DefaultAvatarURL {
		t.Fatalf("expected default avatar, got %q", got)
	}

	u.AvatarURL = "https://img.example.com/a.png"
	if got := u.AvatarOrDefault(); got != "https://img.example.com/a.png" {
		t.Fatalf("unexpected avatar %q", got)
	}
}

func TestUser_IsAdmin(t *testing.T) {
	u := User{Role: consts.RoleUser}
	if u.IsAdmin() {
		t.Fatal("expected plain user")
	}
	u.Role = consts.RoleAdmin
	if !u.IsAdmin() {
		t.Fatal("expected admin")
	}
}

// 测试内容：密码字段序列化时必须被剥离。
func TestUser_PasswordNeverMarshalled(t *testing.T) {
	u := User{Username: "alice", Password: "secret-hash"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "secret-hash") || strings.Contains(string(data), "password") {
		t.Fatalf("expected password to be omitted, got %s", data)
	}
}
