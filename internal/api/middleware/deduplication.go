package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"device-advisor/internal/infrastructure/config"
	"device-advisor/internal/pkg/common"
)

// dedupStore 去重後端：redis 供多實例部署共用，記憶體版供單機
type dedupStore interface {
	// Seen 回報指紋在窗口內是否已出現；未出現時順手記錄
	Seen(c *gin.Context, fingerprint string, window time.Duration) bool
}

// redisDedupStore 以 SET NX 實作，key 到期由 redis 處理
type redisDedupStore struct {
	client *redis.Client
}

func (s *redisDedupStore) Seen(c *gin.Context, fingerprint string, window time.Duration) bool {
	ok, err := s.client.SetNX(c.Request.Context(), "dedup:"+fingerprint, 1, window).Result()
	if err != nil {
		// redis 掛掉時放行，去重是防護不是正確性條件
		common.LogWarn("Dedup redis unavailable, allowing request", zap.Error(err))
		return false
	}
	return !ok
}

// memoryDedupStore 程序內記憶體版，定期清掉過期指紋
type memoryDedupStore struct {
	mu       sync.Mutex
	requests map[string]time.Time
}

func (s *memoryDedupStore) Seen(_ *gin.Context, fingerprint string, window time.Duration) bool {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	if last, exists := s.requests[fingerprint]; exists && now.Sub(last) <= window {
		return true
	}
	s.requests[fingerprint] = now
	return false
}

func (s *memoryDedupStore) startCleanup(window time.Duration) {
	interval := 10 * time.Minute
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			s.mu.Lock()
			for k, t := range s.requests {
				if now.Sub(t) > 10*window {
					delete(s.requests, k)
				}
			}
			s.mu.Unlock()
		}
	}()
}

// newDedupStore 依設定選擇後端，redis_addr 留空時用記憶體版
func newDedupStore(cfg config.DedupConfig) dedupStore {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisAddr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  1 * time.Second,
			WriteTimeout: 1 * time.Second,
		})
		return &redisDedupStore{client: client}
	}

	store := &memoryDedupStore{requests: make(map[string]time.Time)}
	store.startCleanup(cfg.Window)
	return store
}

// Deduplication 請求去重中間件，短時間內完全相同的 POST 擋下
func Deduplication(cfg config.DedupConfig) gin.HandlerFunc {
	store := newDedupStore(cfg)

	return func(c *gin.Context) {
		// 只處理 POST 請求
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		// 生成請求指紋
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		if store.Seen(c, fingerprint, cfg.Window) {
			c.JSON(429, gin.H{
				"error": "Request too frequent",
				"code":  common.ErrCodeTooManyRequests,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
