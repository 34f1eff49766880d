package service

import (
	"sync"
	"time"

	"github.com/Guducat/SaToken-FastStart/internal/consts"

	"github.com/google/uuid"
)

type resetTokenEntry struct {
	Token    string
	IssuedAt time.Time
}

// ResetTokenRegistry 管理找回密码的临时令牌。
// 进程内状态：每个用户同一时刻只保留一个有效令牌；
// 过期由 Verify 惰性判定，后台定时清理兜底回收内存。
type ResetTokenRegistry struct {
	// entries 存储重置密码令牌
	// Key: userID (uint), Value: resetTokenEntry
	entries  sync.Map
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func NewResetTokenRegistry() *ResetTokenRegistry {
	return &ResetTokenRegistry{
		ttl:  consts.ResetTokenTTL,
		stop: make(chan struct{}),
	}
}

// Generate 为用户签发新令牌并记录签发时间。
// 同一用户的旧令牌会被直接覆盖，立即失效，防止旧链接重放。
func (r *ResetTokenRegistry) Generate(userID uint) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	token := id.String()
	r.entries.Store(userID, resetTokenEntry{Token: token, IssuedAt: time.Now()})
	return token, nil
}

// Verify 校验令牌：条目存在、令牌逐字节一致且未超过有效期才返回 true。
// 不消费令牌；缺失、不匹配、过期对调用方一律只表现为 false。
func (r *ResetTokenRegistry) Verify(userID uint, token string) bool {
	val, ok := r.entries.Load(userID)
	if !ok {
		return false
	}
	entry, ok := val.(resetTokenEntry)
	if !ok {
		return false
	}
	if entry.Token != token {
		return false
	}
	return time.Since(entry.IssuedAt) <= r.ttl
}

// Remove 无条件删除用户的令牌，条目不存在时为空操作。
func (r *ResetTokenRegistry) Remove(userID uint) {
	r.entries.Delete(userID)
}

// StartSweeper 启动后台清理协程，每隔 interval 移除过期条目。
func (r *ResetTokenRegistry) StartSweeper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.sweep()
			case <-r.stop:
				return
			}
		}
	}()
}

// StopSweeper 停止后台清理协程，可重复调用。
func (r *ResetTokenRegistry) StopSweeper() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// sweep 移除所有超过有效期的条目。
// CompareAndDelete 保证不会误删清理期间刚被 Generate 覆盖的新令牌。
func (r *ResetTokenRegistry) sweep() {
	now := time.Now()
	r.entries.Range(func(key, value any) bool {
		entry, ok := value.(resetTokenEntry)
		if !ok || now.Sub(entry.IssuedAt) > r.ttl {
			r.entries.CompareAndDelete(key, value)
		}
		return true
	})
}
