package handler

import (
	"os"
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/config"
	"github.com/Guducat/SaToken-FastStart/internal/testutils"
)

// 测试内容：为 handler 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "faststart-handler-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("FASTSTART_SERVER_MODE", "debug"),
		testutils.SetEnv("FASTSTART_JWT_SECRET", "test_secret"),
		testutils.SetEnv("FASTSTART_JWT_EXPIRATION_HOURS", "24"),
		testutils.SetEnv("FASTSTART_REDIS_ENABLED", "false"),
	}
	config.InitConfigWithoutWatch(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
