package gemini

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

const baseURL = "https://generativelanguage.googleapis.com/v1beta"

// Client Gemini generateContent 客戶端
type Client struct {
	cfg    config.ProviderConfig
	client *resty.Client
}

// NewClient 創建 Gemini 客戶端
func NewClient(cfg config.ProviderConfig) *Client {
	return newClientWithBaseURL(cfg, baseURL)
}

func newClientWithBaseURL(cfg config.ProviderConfig, url string) *Client {
	client := resty.New().
		SetBaseURL(url).
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
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.3,
			"topK":            40,
			"topP":            0.95,
			"maxOutputTokens": c.cfg.MaxTokens,
		},
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.cfg.APIKey).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", c.cfg.Model))
	common.LogAICall("gemini", c.cfg.Model, time.Since(start), err)

	if err != nil {
		return "", &provider.NetworkError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		common.LogError("Gemini API returned error status",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", c.cfg.Model),
		)
		return "", &provider.HTTPError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	// 解析回應
	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	// 2xx 但回應體讀不出文字內容，跟空回應同等處理
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		common.LogError("Gemini response body not parseable",
			zap.Error(err),
			zap.String("model", c.cfg.Model),
		)
		return "", provider.ErrEmptyResponse
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 ||
		result.Candidates[0].Content.Parts[0].Text == "" {
		return "", provider.ErrEmptyResponse
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
