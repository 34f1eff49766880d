package testutils

import (
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/Guducat/SaToken-FastStart/internal/db"
	"github.com/Guducat/SaToken-FastStart/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing,
// sets the global db.DB, and performs auto-migration.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:fst_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if prevDB != nil && db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}

// SavedEnv 记录一个环境变量被覆盖前的状态，测试结束后据此还原。
// TestMain 里无法使用 t.Setenv，所以保留这组手动保存/还原的辅助函数。
type SavedEnv struct {
	key     string
	prev    string
	existed bool
}

// SetEnv 覆盖环境变量并返回它之前的状态。
func SetEnv(key, value string) SavedEnv {
	prev, existed := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{key: key, prev: prev, existed: existed}
}

// RestoreEnv 按保存的状态还原环境变量，之前不存在的会被删除。
func RestoreEnv(saved []SavedEnv) {
	for _, s := range saved {
		if s.existed {
			_ = os.Setenv(s.key, s.prev)
		} else {
			_ = os.Unsetenv(s.key)
		}
	}
}
