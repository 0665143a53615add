package recommend

import (
	"device-advisor/internal/core/catalog"
)

// Experience 使用者經驗等級
type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// Budget 預算區間。Max 為 0 視為未設定預算。
type Budget struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Request 推薦請求，每次呼叫建立一份，不做持久化
type Request struct {
	Category    catalog.Category `json:"category" binding:"required"`
	Budget      *Budget          `json:"budget,omitempty"`
	Preferences []string         `json:"preferences"`
	Usage       string           `json:"usage" binding:"required"`
	Experience  Experience       `json:"experience"`
}

// Recommendation 推薦結果。Device 一定指向型錄裡的真實條目，
// 對不上型錄的候選會被直接丟棄而不是帶著空裝置輸出。
type Recommendation struct {
	Device    catalog.Device `json:"device"`
	Score     int            `json:"score"`
	Reasoning string         `json:"reasoning"`
	Pros      []string       `json:"pros"`
	Cons      []string       `json:"cons"`
}
