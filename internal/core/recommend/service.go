package recommend

import (
	"context"
	"time"

	"device-advisor/internal/core/ai/provider"
	"device-advisor/internal/core/catalog"

	"go.uber.org/zap"
)

// Service 推薦協調器：AI 優先、本地回退兜底。
// Recommend 永遠回有效結果，AI 路徑的任何失敗都不會傳到呼叫端。
type Service struct {
	provider   provider.Provider
	credential string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewService 創建推薦服務
func NewService(p provider.Provider, credential string, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider:   p,
		credential: credential,
		timeout:    timeout,
		logger:     logger,
	}
}

// Recommend 執行推薦流程。
// 憑證未配置就不發出網路請求，直接走本地回退；
// AI 呼叫失敗、回應解析失敗、或解析後一筆都對不上型錄，同樣回退。
func (s *Service) Recommend(ctx context.Context, req *Request, devices []catalog.Device) []Recommendation {
	if err := provider.ValidateCredential(s.credential); err != nil {
		s.logger.Info("ai credential not configured, using local recommendations",
			zap.String("category", string(req.Category)),
		)
		return FallbackRecommendations(req, devices)
	}

	subset := make([]catalog.Device, 0, len(devices))
	for _, d := range devices {
		if d.Category == req.Category {
			subset = append(subset, d)
		}
	}

	recs, err := s.recommendWithAI(ctx, req, subset)
	if err != nil {
		s.logger.Warn("ai recommendation failed, falling back to local scoring",
			zap.String("category", string(req.Category)),
			zap.String("model", s.provider.Model()),
			zap.Error(err),
		)
		return FallbackRecommendations(req, devices)
	}
	if len(recs) == 0 {
		// 解析成功但全部條目都對不上型錄
		s.logger.Warn("ai response matched no catalog devices, falling back",
			zap.String("category", string(req.Category)),
		)
		return FallbackRecommendations(req, devices)
	}

	return recs
}

// recommendWithAI 單次 AI 呼叫加解析，帶整體超時
func (s *Service) recommendWithAI(ctx context.Context, req *Request, devices []catalog.Device) ([]Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt := BuildPrompt(req, devices)

	start := time.Now()
	raw, err := s.provider.Complete(ctx, prompt)
	duration := time.Since(start)
	if err != nil {
		return nil, err
	}

	s.logger.Info("ai completion succeeded",
		zap.String("model", s.provider.Model()),
		zap.Duration("duration", duration),
		zap.Int("response_length", len(raw)),
	)

	return ParseResponse(raw, devices)
}
