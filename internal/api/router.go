package api

import (
	"fmt"
	"net/http"
	"time"

	"device-advisor/internal/api/handlers/catalogapi"
	"device-advisor/internal/api/handlers/health"
	recommendHandler "device-advisor/internal/api/handlers/recommend"
	"device-advisor/internal/api/middleware"
	"device-advisor/internal/core/ai/provider"
	"device-advisor/internal/core/ai/provider/deepseek"
	"device-advisor/internal/core/ai/provider/gemini"
	"device-advisor/internal/core/catalog"
	recommendService "device-advisor/internal/core/recommend"
	"device-advisor/internal/infrastructure/config"
	"device-advisor/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 請求體大小限制 (1MB)，推薦請求都是小 JSON
const maxBodySize = 1 << 20

// newProvider 依設定建立模型供應商，回傳供應商與其憑證
func newProvider(cfg *config.Config) (provider.Provider, string, error) {
	switch cfg.AI.Provider {
	case "deepseek":
		return deepseek.NewClient(cfg.Deepseek), cfg.Deepseek.APIKey, nil
	case "gemini":
		return gemini.NewClient(cfg.Gemini), cfg.Gemini.APIKey, nil
	default:
		return nil, "", fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store *catalog.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 請求去重
	if cfg.Dedup.Enabled {
		router.Use(middleware.Deduplication(cfg.Dedup))
	}

	// 初始化模型供應商
	aiProvider, credential, err := newProvider(cfg)
	if err != nil {
		common.LogError("Failed to initialize ai provider", zap.Error(err))
		return nil, err
	}

	common.LogInfo("Initializing services",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", aiProvider.Model()),
		zap.Duration("ai_timeout", cfg.AI.Timeout),
		zap.Bool("ai_configured", provider.ValidateCredential(credential) == nil),
	)

	// 初始化推薦服務
	recommendSvc := recommendService.NewService(aiProvider, credential, cfg.AI.Timeout, common.Logger)

	// 全局中間件：注入配置
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// 推薦端點另掛一份在根路徑，方便不帶版本前綴的客戶端
	router.POST("/recommendations", recommendHandler.HandleRecommend(recommendSvc, store))

	// API 路由組
	api := router.Group("/api/v1")
	{
		api.POST("/recommendations", recommendHandler.HandleRecommend(recommendSvc, store))
		api.GET("/categories", catalogapi.HandleListCategories(store))
		api.GET("/devices", catalogapi.HandleListDevices(store))
	}

	// 未匹配的路由
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
			"code":  common.ErrCodeNotFound,
		})
	})

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Int("device_count", len(store.Devices())),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
