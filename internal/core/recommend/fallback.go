package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"device-advisor/internal/core/catalog"
)

// FallbackRecommendations 本地啟發式評分，AI 不可用時的替代路徑。
// 純函式：同樣的請求與裝置清單永遠得到同樣的結果。
// 回傳最多三筆，分數一律落在 [40, 100]。
func FallbackRecommendations(req *Request, devices []catalog.Device) []Recommendation {
	var pool []catalog.Device
	for _, d := range devices {
		if d.Category == req.Category {
			pool = append(pool, d)
		}
	}
	pool = filterByBudget(pool, req.Budget)

	profile := extractUsageProfile(req.Usage)

	type scored struct {
		device catalog.Device
		score  int
	}
	ranked := make([]scored, 0, len(pool))
	for _, d := range pool {
		ranked = append(ranked, scored{device: d, score: scoreDevice(d, req, profile)})
	}

	// 穩定排序，同分維持型錄順序
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	recs := make([]Recommendation, 0, len(ranked))
	for _, r := range ranked {
		recs = append(recs, Recommendation{
			Device:    r.device,
			Score:     r.score,
			Reasoning: buildReasoning(r.device, req, profile),
			Pros:      buildPros(r.device, req, profile),
			Cons:      buildCons(r.device, req),
		})
	}
	return recs
}

// filterByBudget 先套用嚴格的 [min, max] 區間，沒有結果時放寬到
// 上限的 1.3 倍（此時不再管下限），仍然沒有就放棄過濾，
// 寧可回超出預算的結果也不回空清單。
func filterByBudget(devices []catalog.Device, budget *Budget) []catalog.Device {
	if budget == nil || budget.Max <= 0 {
		return devices
	}

	var strict []catalog.Device
	for _, d := range devices {
		if d.Price >= budget.Min && d.Price <= budget.Max {
			strict = append(strict, d)
		}
	}
	if len(strict) > 0 {
		return strict
	}

	var relaxed []catalog.Device
	for _, d := range devices {
		if d.Price <= budget.Max*1.3 {
			relaxed = append(relaxed, d)
		}
	}
	if len(relaxed) > 0 {
		return relaxed
	}
	return devices
}

// scoreDevice 四個構面加總後夾限到 [40, 100]：
// 評價、預算契合度、使用情境吻合度、經驗等級適配度。
func scoreDevice(d catalog.Device, req *Request, profile usageProfile) int {
	score := ratingScore(d) +
		budgetScore(d, req.Budget) +
		usageScore(d, profile) +
		experienceScore(d, req.Experience)

	if score > 100 {
		return 100
	}
	if score < 40 {
		return 40
	}
	return score
}

// ratingScore 評價換算，滿分 30
func ratingScore(d catalog.Device) int {
	score := int(d.Rating * 6)
	if score > 30 {
		score = 30
	}
	return score
}

// budgetScore 預算契合度，固定落在 [0, 25]。
// 區間內離下限越近越高分，超出上限按超出比例扣分。
// 過濾放寬後池子裡可能有低於下限或遠超上限的裝置，所以兩端都要夾住。
func budgetScore(d catalog.Device, budget *Budget) int {
	if budget == nil || budget.Max <= 0 {
		return 20
	}

	score := 25
	if d.Price <= budget.Max {
		if budget.Max > budget.Min {
			score -= int(10 * (d.Price - budget.Min) / (budget.Max - budget.Min))
		}
	} else {
		overage := d.Price - budget.Max
		score -= int(overage / budget.Max * 20)
	}

	if score > 25 {
		score = 25
	}
	if score < 0 {
		score = 0
	}
	return score
}

// usageScore 使用情境吻合度，底分 15，依情境加分，上限 30
func usageScore(d catalog.Device, profile usageProfile) int {
	score := 15
	subcategory := strings.ToLower(d.Subcategory)

	if profile.Gaming {
		if strings.Contains(subcategory, "gaming") {
			score += 15
		} else if _, ok := matchFeature(d.Features, gamingFeatureTerms); ok {
			score += 10
		}
	}
	if profile.Work {
		if strings.Contains(subcategory, "business") || strings.Contains(subcategory, "workstation") {
			score += 15
		} else if _, ok := matchFeature(d.Features, workFeatureTerms); ok {
			score += 10
		}
	}
	if profile.Coding {
		switch gb := ramGB(d); {
		case gb >= 16:
			score += 12
		case gb >= 8:
			score += 6
		}
	}
	if profile.Creative {
		if _, ok := matchFeature(d.Features, creativeFeatureTerms); ok {
			score += 10
		} else if strings.Contains(subcategory, "workstation") {
			score += 5
		}
	}

	if score > 30 {
		score = 30
	}
	return score
}

// experienceScore 經驗等級適配度：新手偏好知名品牌與低價位，
// 進階使用者偏好高階機種
func experienceScore(d catalog.Device, experience Experience) int {
	subcategory := strings.ToLower(d.Subcategory)
	switch experience {
	case ExperienceBeginner:
		if d.Brand == "Apple" {
			return 15
		}
		if d.Price < 1000 {
			return 12
		}
		return 8
	case ExperienceAdvanced:
		if strings.Contains(subcategory, "workstation") || strings.Contains(subcategory, "gaming") {
			return 15
		}
		if d.Price > 1500 {
			return 12
		}
		return 10
	default:
		return 12
	}
}

// ramGB 解析規格表裡的記憶體容量，取開頭的整數。
// "16GB unified" 這類格式取 16；解析不出來回 0。
func ramGB(d catalog.Device) int {
	raw, ok := d.Specs["ram"]
	if !ok {
		return 0
	}
	digits := ""
	for _, r := range strings.TrimSpace(raw) {
		if r < '0' || r > '9' {
			break
		}
		digits += string(r)
	}
	gb, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return gb
}

// buildReasoning 組合預算、使用情境、經驗等級、評價四段說明。
// 預算句分三種：寬裕（低於上限八成）、緊貼區間、超出（標明超出金額）。
func buildReasoning(d catalog.Device, req *Request, profile usageProfile) string {
	var parts []string

	if req.Budget != nil && req.Budget.Max > 0 {
		switch {
		case d.Price <= req.Budget.Max*0.8:
			parts = append(parts, fmt.Sprintf("Comfortably under your budget at $%.0f", d.Price))
		case d.Price <= req.Budget.Max:
			parts = append(parts, fmt.Sprintf("Fits tightly within your budget at $%.0f", d.Price))
		default:
			parts = append(parts, fmt.Sprintf("Over budget by $%.0f but worth considering", d.Price-req.Budget.Max))
		}
	}

	parts = append(parts, usageSentence(d, req, profile))

	switch req.Experience {
	case ExperienceBeginner:
		parts = append(parts, "easy to get started with")
	case ExperienceAdvanced:
		parts = append(parts, "offers the depth advanced users expect")
	default:
		parts = append(parts, "balanced for intermediate users")
	}

	parts = append(parts, fmt.Sprintf("rated %.1f/5 by users", d.Rating))

	reasoning := strings.Join(parts, ", ")
	return strings.ToUpper(reasoning[:1]) + reasoning[1:] + "."
}

// usageSentence 情境句，找得到吻合的功能就點名那個功能
func usageSentence(d catalog.Device, req *Request, profile usageProfile) string {
	switch {
	case profile.Gaming:
		if feature, ok := matchFeature(d.Features, gamingFeatureTerms); ok {
			return fmt.Sprintf("excellent for gaming thanks to %s", feature)
		}
		return "well suited for gaming workloads"
	case profile.Work:
		if feature, ok := matchFeature(d.Features, workFeatureTerms); ok {
			return fmt.Sprintf("dependable for professional use with %s", feature)
		}
		return "a dependable choice for professional use"
	case profile.Coding:
		if ram, ok := d.Specs["ram"]; ok {
			return fmt.Sprintf("handles development workloads with %s of memory", ram)
		}
		return "capable of handling development workloads"
	case profile.Creative:
		if feature, ok := matchFeature(d.Features, creativeFeatureTerms); ok {
			return fmt.Sprintf("equipped for creative work with %s", feature)
		}
		return "equipped for creative work"
	default:
		return fmt.Sprintf("a solid match for %s", req.Usage)
	}
}

// buildPros 最多三個優點，順序固定：預算關係、評價門檻（≥4.5 才給）、
// 情境吻合的功能，不足三個再拿型錄功能補滿
func buildPros(d catalog.Device, req *Request, profile usageProfile) []string {
	var pros []string

	if req.Budget != nil && req.Budget.Max > 0 {
		if d.Price <= req.Budget.Max {
			pros = append(pros, "Within your budget")
		} else {
			pros = append(pros, "Strong value for the feature set")
		}
	}

	if d.Rating >= 4.5 {
		pros = append(pros, fmt.Sprintf("Excellent user rating of %.1f/5", d.Rating))
	}

	var terms []string
	switch {
	case profile.Gaming:
		terms = gamingFeatureTerms
	case profile.Work:
		terms = workFeatureTerms
	case profile.Creative:
		terms = creativeFeatureTerms
	}
	if terms != nil {
		for _, f := range d.Features {
			if len(pros) >= 3 {
				break
			}
			if featureHasTerm(f, terms) && !containsString(pros, f) {
				pros = append(pros, f)
			}
		}
	}

	for _, f := range d.Features {
		if len(pros) >= 3 {
			break
		}
		if !containsString(pros, f) {
			pros = append(pros, f)
		}
	}

	if len(pros) > 3 {
		pros = pros[:3]
	}
	return pros
}

// buildCons 缺點依序：超出預算、新手買到高價旗艦、分類固有的取捨。
// 一個都沒有就給相容性提醒；只有一個就按評價補第二個通用缺點。
func buildCons(d catalog.Device, req *Request) []string {
	var cons []string

	if req.Budget != nil && req.Budget.Max > 0 && d.Price > req.Budget.Max {
		cons = append(cons, fmt.Sprintf("Exceeds your budget by $%.0f", d.Price-req.Budget.Max))
	}
	if req.Experience == ExperienceBeginner && d.Price > 2000 {
		cons = append(cons, "May be more machine than a newcomer needs")
	}
	if d.Category == catalog.CategoryLaptop && d.Subcategory == "gaming" {
		cons = append(cons, "May have shorter battery life")
	}
	if d.Category == catalog.CategoryMobile && d.Subcategory == "flagship" && d.Price > 1000 {
		cons = append(cons, "Premium pricing")
	}

	if len(cons) == 0 {
		return []string{"Check compatibility with your existing setup"}
	}
	if len(cons) == 1 {
		if d.Rating < 4.5 {
			cons = append(cons, "Mixed user reviews")
		} else {
			cons = append(cons, "Limited availability")
		}
	}
	if len(cons) > 2 {
		cons = cons[:2]
	}
	return cons
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
