package deepseek

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"device-advisor/internal/core/ai/provider"
	"device-advisor/internal/infrastructure/config"
	"device-advisor/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const baseURL = "https://api.deepseek.com/v1"

const systemPrompt = "You are an expert device recommendation assistant. Analyze user requirements and recommend the best devices with detailed reasoning."

// Client Deepseek 聊天補全客戶端
type Client struct {
	cfg    config.ProviderConfig
	client *resty.Client
}

// NewClient 創建 Deepseek 客戶端
func NewClient(cfg config.ProviderConfig) *Client {
	return newClientWithBaseURL(cfg, baseURL)
}

func newClientWithBaseURL(cfg config.ProviderConfig, url string) *Client {
	client := resty.New().
		SetBaseURL(url).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		cfg:    cfg,
		client: client,
	}
}

// Model 當前使用的模型名稱
func (c *Client) Model() string {
	return c.cfg.Model
}

// Complete 送出 prompt 並回傳模型文字
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := map[string]interface{}{
		"model": c.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"max_tokens":  c.cfg.MaxTokens,
		"temperature": 0.7,
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogAICall("deepseek", c.cfg.Model, time.Since(start), err)

	if err != nil {
		return "", &provider.NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Deepseek API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.cfg.Model),
		)
		return "", &provider.HTTPError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	// 解析回應
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	// 2xx 但回應體讀不出文字內容，跟空回應同等處理
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		common.LogError("Deepseek response body not parseable",
			zap.Error(err),
			zap.String("model", c.cfg.Model),
		)
		return "", provider.ErrEmptyResponse
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", provider.ErrEmptyResponse
	}

	return result.Choices[0].Message.Content, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
