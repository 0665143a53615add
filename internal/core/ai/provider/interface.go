package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider 定義 AI 供應商介面。兩個供應商實作同一份契約，
// 由設定檔選擇其中之一，不各自維護平行流程。
type Provider interface {
	// Complete 送出 prompt 並回傳模型的原始文字
	Complete(ctx context.Context, prompt string) (string, error)

	// Model 獲取當前使用的模型名稱
	Model() string

	// Close 關閉供應商連接
	Close() error
}

// 失敗分類。呼叫端（協調器）把每一種都視為可恢復，轉入本地回退。
var (
	// ErrNotConfigured 憑證缺失或為占位值
	ErrNotConfigured = errors.New("ai provider credential not configured")

	// ErrEmptyResponse 2xx 但回應中沒有可用的文字內容
	ErrEmptyResponse = errors.New("empty response from ai provider")
)

// NetworkError 請求送不出去或中途失敗（含超時取消）
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("ai provider network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError 非 2xx 狀態碼，保留回應內容供診斷
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("ai provider returned status %d: %s", e.StatusCode, e.Body)
}

// 憑證最短長度：真實的 Deepseek / Gemini 金鑰都長於此
const minCredentialLength = 20

// ValidateCredential 檢查憑證是否可用。缺失、占位字串、
// 已知的無效標記或過短一律視為未配置。
func ValidateCredential(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrNotConfigured
	}
	if strings.Contains(key, "your_") || key == "invalid_key" {
		return ErrNotConfigured
	}
	if len(key) < minCredentialLength {
		return ErrNotConfigured
	}
	return nil
}
