package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Guducat/SaToken-FastStart/internal/config"
	"github.com/Guducat/SaToken-FastStart/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter *rate.Limiter
	// unix 纳秒时间戳，请求协程写入、清理协程读取
	lastSeen atomic.Int64
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch()
	i.ips.Store(ip, c)

	return c.limiter
}

func (i *IPRateLimiter) cleanup() {
	i.ips.Range(func(key, value interface{}) bool {
		c := value.(*client)
		if time.Since(time.Unix(0, c.lastSeen.Load())) > 3*time.Minute {
			i.ips.Delete(key)
		}
		return true
	})
}

func (i *IPRateLimiter) cleanupLoop() {
	for {
		time.Sleep(1 * time.Minute)
		i.cleanup()
	}
}

// allowByRedisRateLimit 基于 Redis 固定窗口计数限流。
// client 为 nil 或限流参数未配置时直接放行；Redis 异常时返回错误由调用方降级。
func allowByRedisRateLimit(rdb *redis.Client, ip string, rps float64, burst int) (bool, error) {
	if rdb == nil || rps <= 0 || burst <= 0 {
		return true, nil
	}

	now := time.Now().Unix()
	key := service.RedisKey("rate_limit", "auth", ip, strconv.FormatInt(now, 10))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// 窗口键只活两秒，过期即自动回收
		_ = rdb.Expire(ctx, key, 2*time.Second).Err()
	}

	limit := int64(rps)
	if int64(burst) > limit {
		limit = int64(burst)
	}
	return count <= limit, nil
}

// RateLimitMiddleware 创建认证接口限流中间件。
// 开启 Redis 时优先走 Redis 计数，Redis 不可用则回退本地内存限流。
func RateLimitMiddleware() gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := config.Get()

		// 检查总开关
		if !cfg.RateLimit.Enabled {
			c.Next()
			return
		}

		currentRPS := cfg.RateLimit.AuthRPS
		currentBurst := cfg.RateLimit.AuthBurst
		ip := c.ClientIP()

		if rdb := service.GetRedisClient(); rdb != nil {
			ok, err := allowByRedisRateLimit(rdb, ip, currentRPS, currentBurst)
			if err == nil {
				if !ok {
					c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis 异常时回退内存限流
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(currentRPS), currentBurst)
		})

		l := limiter.getLimiter(ip)

		// 动态更新 limit 和 burst (如果配置发生变更)
		if l.Limit() != rate.Limit(currentRPS) {
			l.SetLimit(rate.Limit(currentRPS))
		}
		if l.Burst() != currentBurst {
			l.SetBurst(currentBurst)
		}

		if !l.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁，请稍后再试"})
			c.Abort()
			return
		}
		c.Next()
	}
}
