package service

import (
	"strings"
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/config"
	"github.com/Guducat/SaToken-FastStart/internal/testutils"
)

// 测试内容：验证码未启用时校验直接放行。
func TestVerifyChallenge_DisabledPassesThrough(t *testing.T) {
	captcha := NewCaptchaService()

	if captcha.Enabled() {
		t.Fatal("expected captcha to be disabled by default")
	}
	ok, msg := captcha.VerifyChallenge("", "")
	if !ok || msg != "" {
		t.Fatalf("expected pass-through when disabled, got ok=%v msg=%q", ok, msg)
	}
}

func TestVerifyChallenge_EnabledRequiresAnswer(t *testing.T) {
	envs := []testutils.SavedEnv{
		testutils.SetEnv("FASTSTART_CAPTCHA_ENABLED", "true"),
	}
	defer func() {
		testutils.RestoreEnv(envs)
		config.InitConfigWithoutWatch(t.TempDir())
	}()
	config.InitConfigWithoutWatch(t.TempDir())

	captcha := NewCaptchaService()
	if !captcha.Enabled() {
		t.Fatal("expected captcha to be enabled")
	}

	ok, msg := captcha.VerifyChallenge("", "")
	if ok || msg == "" {
		t.Fatalf("expected empty challenge to be rejected, got ok=%v msg=%q", ok, msg)
	}

	ok, _ = captcha.VerifyChallenge("no-such-id", "0000")
	if ok {
		t.Fatal("expected unknown captcha id to be rejected")
	}
}

func TestNewChallenge(t *testing.T) {
	captcha := NewCaptchaService()

	id, b64s, err := captcha.NewChallenge()
	if err != nil {
		t.Fatalf("NewChallenge: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty captcha id")
	}
	if !strings.HasPrefix(b64s, "data:image/") {
		t.Fatalf("expected data-uri image, got %.30q", b64s)
	}
}
