package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"device-advisor/internal/core/ai/provider"
	"device-advisor/internal/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCredential = "sk-0123456789abcdefghij"

// stubProvider 固定回應的假供應商
type stubProvider struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (s *stubProvider) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubProvider) Model() string { return "stub-model" }

func (s *stubProvider) Close() error { return nil }

func TestRecommendUsesAIResponse(t *testing.T) {
	stub := &stubProvider{
		response: `[{"deviceName": "ASUS ROG Strix G15", "score": 93, "reasoning": "Ideal for gaming", "pros": ["144Hz"], "cons": ["Heavy"]}]`,
	}
	svc := NewService(stub, testCredential, time.Second, zap.NewNop())

	req := &Request{
		Category:   catalog.CategoryLaptop,
		Usage:      "gaming",
		Experience: ExperienceIntermediate,
	}

	recs := svc.Recommend(context.Background(), req, testDevices(t))
	require.Len(t, recs, 1)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "laptop-2", recs[0].Device.ID)
	assert.Equal(t, 93, recs[0].Score)
	assert.Equal(t, "Ideal for gaming", recs[0].Reasoning)

	// 提示詞只帶同分類的裝置
	assert.Contains(t, stub.prompt, "MacBook Pro")
	assert.NotContains(t, stub.prompt, "iPhone")
}

func TestRecommendFallsBackWhenNotConfigured(t *testing.T) {
	stub := &stubProvider{response: "should never be called"}
	svc := NewService(stub, "your_api_key_here", time.Second, zap.NewNop())

	req := &Request{
		Category:   catalog.CategoryMobile,
		Usage:      "photos",
		Experience: ExperienceBeginner,
	}

	devices := testDevices(t)
	recs := svc.Recommend(context.Background(), req, devices)

	// 不該發出任何外部呼叫
	assert.Equal(t, 0, stub.calls)
	assert.Equal(t, FallbackRecommendations(req, devices), recs)
}

func TestRecommendFallsBackOnProviderFailure(t *testing.T) {
	req := &Request{
		Category:   catalog.CategoryHeadphone,
		Budget:     &Budget{Max: 400},
		Usage:      "music on commutes",
		Experience: ExperienceIntermediate,
	}
	devices := testDevices(t)
	expected := FallbackRecommendations(req, devices)

	failures := []error{
		&provider.NetworkError{Err: errors.New("connection refused")},
		&provider.HTTPError{StatusCode: 500, Body: "internal error"},
		provider.ErrEmptyResponse,
	}

	for _, failure := range failures {
		stub := &stubProvider{err: failure}
		svc := NewService(stub, testCredential, time.Second, zap.NewNop())

		recs := svc.Recommend(context.Background(), req, devices)
		assert.Equal(t, 1, stub.calls)
		// 故障路徑的結果跟直接呼叫本地評分完全一致
		assert.Equal(t, expected, recs, "failure %v", failure)
	}
}

func TestRecommendFallsBackOnUnparseableResponse(t *testing.T) {
	stub := &stubProvider{response: "I'm sorry, I can't produce JSON today."}
	svc := NewService(stub, testCredential, time.Second, zap.NewNop())

	req := &Request{
		Category:   catalog.CategoryKeyboard,
		Usage:      "typing at work",
		Experience: ExperienceIntermediate,
	}

	devices := testDevices(t)
	recs := svc.Recommend(context.Background(), req, devices)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, FallbackRecommendations(req, devices), recs)
}

func TestRecommendFallsBackWhenNoDeviceMatches(t *testing.T) {
	// 解析成功但所有條目都對不上型錄，等同失敗
	stub := &stubProvider{
		response: `[{"deviceName": "Imaginary Keyboard X", "score": 90, "reasoning": "Made up", "pros": ["None"], "cons": ["Fictional"]}]`,
	}
	svc := NewService(stub, testCredential, time.Second, zap.NewNop())

	req := &Request{
		Category:   catalog.CategoryKeyboard,
		Usage:      "gaming",
		Experience: ExperienceAdvanced,
	}

	devices := testDevices(t)
	recs := svc.Recommend(context.Background(), req, devices)
	assert.Equal(t, FallbackRecommendations(req, devices), recs)
	assert.NotEmpty(t, recs)
}

func TestRecommendNeverReturnsEmpty(t *testing.T) {
	stub := &stubProvider{err: &provider.NetworkError{Err: context.DeadlineExceeded}}
	svc := NewService(stub, testCredential, time.Millisecond, zap.NewNop())

	for _, category := range catalog.Categories {
		req := &Request{
			Category:   category,
			Usage:      "general use",
			Experience: ExperienceIntermediate,
		}
		recs := svc.Recommend(context.Background(), req, testDevices(t))
		assert.NotEmpty(t, recs, "category %s", category)
	}
}
