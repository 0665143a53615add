package recommend

import (
	"strings"
)

// usageProfile 從 usage 描述萃取出的關鍵字輪廓。
// 提示詞組裝與回退評分共用同一份萃取邏輯，避免兩邊各認各的關鍵字。
type usageProfile struct {
	Gaming   bool
	Work     bool
	Coding   bool
	Creative bool
}

// extractUsageProfile 以關鍵字判斷使用情境
func extractUsageProfile(usage string) usageProfile {
	text := strings.ToLower(usage)
	return usageProfile{
		Gaming: strings.Contains(text, "gaming") || strings.Contains(text, "game"),
		Work: strings.Contains(text, "work") ||
			strings.Contains(text, "business") ||
			strings.Contains(text, "professional"),
		Coding: strings.Contains(text, "coding") ||
			strings.Contains(text, "programming") ||
			strings.Contains(text, "development"),
		Creative: strings.Contains(text, "design") ||
			strings.Contains(text, "creative") ||
			strings.Contains(text, "editing"),
	}
}

// hints 回傳要在提示詞中強調的情境字串
func (p usageProfile) hints() []string {
	var hints []string
	if p.Gaming {
		hints = append(hints, "gaming performance")
	}
	if p.Work {
		hints = append(hints, "professional reliability")
	}
	if p.Coding {
		hints = append(hints, "development workloads and memory capacity")
	}
	if p.Creative {
		hints = append(hints, "display quality and creative tooling")
	}
	return hints
}

// featureTerms 各情境下認定為加分的功能描述字眼
var (
	gamingFeatureTerms   = []string{"performance", "speed", "graphics", "144hz", "rgb", "cooling", "dts"}
	workFeatureTerms     = []string{"professional", "business", "multi-device", "productivity", "thunderbolt"}
	creativeFeatureTerms = []string{"display", "retina", "xdr", "amoled", "color", "prores"}
)

// matchFeature 回傳第一個包含任一關鍵字的功能描述
func matchFeature(features []string, terms []string) (string, bool) {
	for _, f := range features {
		if featureHasTerm(f, terms) {
			return f, true
		}
	}
	return "", false
}

// featureHasTerm 檢查單一功能描述是否命中任一關鍵字
func featureHasTerm(feature string, terms []string) bool {
	lower := strings.ToLower(feature)
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
