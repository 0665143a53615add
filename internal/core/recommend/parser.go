package recommend

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"device-advisor/internal/core/catalog"
	"device-advisor/internal/pkg/common"
)

// ParseError 修復後的文字仍然不是合法 JSON。
// 呼叫端收到這個錯誤時改走本地回退，不會往使用者傳。
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var objectPattern = regexp.MustCompile(`\{[\s\S]*?\}`)

// ParseResponse 把模型回傳的原始文字轉成推薦清單。
// 容忍常見的 LLM 格式雜訊：markdown 圍欄、夾雜的說明文字、
// 尾逗號、內嵌換行。對不上型錄的條目靜默丟棄，空清單不是錯誤。
func ParseResponse(raw string, devices []catalog.Device) ([]Recommendation, error) {
	jsonStr := strings.TrimSpace(raw)

	// 去掉 ```json ... ``` 包裹（不要求成對出現）
	jsonStr = strings.ReplaceAll(jsonStr, "```json", "")
	jsonStr = strings.ReplaceAll(jsonStr, "```", "")

	// 擷取第一個 [ 到最後一個 ]；找不到陣列就收集 {...} 物件自行拼陣列
	if start, end := strings.Index(jsonStr, "["), strings.LastIndex(jsonStr, "]"); start != -1 && end != -1 && end > start {
		jsonStr = jsonStr[start : end+1]
	} else if objects := objectPattern.FindAllString(jsonStr, -1); len(objects) > 0 {
		jsonStr = "[" + strings.Join(objects, ",") + "]"
	}

	// 折疊空白並修復尾逗號與未加引號的鍵
	jsonStr = common.CollapseWhitespace(jsonStr)
	jsonStr = common.StripTrailingCommas(jsonStr)
	jsonStr = common.QuoteJSONKeys(jsonStr)

	entries, err := decodeEntries(jsonStr)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	var recs []Recommendation
	for _, entry := range entries {
		device, ok := matchDevice(firstString(entry, "deviceName", "name"), devices)
		if !ok {
			// 對不上型錄的名稱直接丟棄，部分結果仍然有效
			continue
		}
		recs = append(recs, buildRecommendation(entry, device))
	}

	repairScores(recs)
	return recs, nil
}

// decodeEntries 解析修復後的字串，頂層若是單一物件則包成單元素陣列
func decodeEntries(jsonStr string) ([]map[string]interface{}, error) {
	var entries []map[string]interface{}
	if err := common.ParseJSON(jsonStr, &entries); err == nil {
		return entries, nil
	}
	var single map[string]interface{}
	if err := common.ParseJSON(jsonStr, &single); err != nil {
		return nil, err
	}
	return []map[string]interface{}{single}, nil
}

// matchDevice 以模糊比對解析裝置名稱，依序嘗試：
// 完全相等（忽略大小寫）、互為子字串、去除非英數字元後互為子字串。
// 依型錄順序取第一個命中的裝置。
func matchDevice(name string, devices []catalog.Device) (catalog.Device, bool) {
	candidate := strings.ToLower(strings.TrimSpace(name))
	if candidate == "" {
		return catalog.Device{}, false
	}

	for _, d := range devices {
		if strings.ToLower(d.Name) == candidate {
			return d, true
		}
	}
	for _, d := range devices {
		deviceName := strings.ToLower(d.Name)
		if strings.Contains(deviceName, candidate) || strings.Contains(candidate, deviceName) {
			return d, true
		}
	}
	strippedCandidate := stripNonAlnum(candidate)
	if strippedCandidate == "" {
		return catalog.Device{}, false
	}
	for _, d := range devices {
		strippedName := stripNonAlnum(strings.ToLower(d.Name))
		if strings.Contains(strippedName, strippedCandidate) || strings.Contains(strippedCandidate, strippedName) {
			return d, true
		}
	}
	return catalog.Device{}, false
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// buildRecommendation 依同義鍵優先序取欄位並補上文件化的預設值
func buildRecommendation(entry map[string]interface{}, device catalog.Device) Recommendation {
	score, ok := firstNumber(entry, "score", "matchScore")
	if !ok {
		score = 80
	}

	reasoning := firstString(entry, "reasoning", "reason", "description")
	if reasoning == "" {
		reasoning = "Recommended based on your requirements"
	}

	pros := firstStringList(entry, "pros", "advantages", "benefits")
	if len(pros) == 0 {
		pros = topFeatures(device, 3)
	}

	cons := firstStringList(entry, "cons", "disadvantages", "drawbacks")
	if len(cons) == 0 {
		cons = []string{"Consider your specific needs"}
	}

	return Recommendation{
		Device:    device,
		Score:     int(math.Round(score)),
		Reasoning: reasoning,
		Pros:      pros,
		Cons:      cons,
	}
}

// repairScores 修復離譜的分數並加上遞減懲罰，
// 避免多筆推薦掛著同一個不真實的高分。
func repairScores(recs []Recommendation) {
	for i := range recs {
		if recs[i].Score > 100 {
			recs[i].Score = 95
		}
		if recs[i].Score < 0 {
			recs[i].Score = 50
		}
		recs[i].Score -= 3 * i
		if recs[i].Score < 40 {
			recs[i].Score = 40
		}
	}
}

func topFeatures(device catalog.Device, n int) []string {
	if len(device.Features) <= n {
		return append([]string(nil), device.Features...)
	}
	return append([]string(nil), device.Features[:n]...)
}

// firstString 依優先序取第一個存在的字串欄位
func firstString(entry map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

// firstNumber 依優先序取第一個存在的數值欄位，容忍字串形式的數字
func firstNumber(entry map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := entry[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case json.Number:
			if f, err := n.Float64(); err == nil {
				return f, true
			}
		case float64:
			return n, true
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// firstStringList 依優先序取第一個存在的字串清單欄位
func firstStringList(entry map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		v, ok := entry[key]
		if !ok {
			continue
		}
		items, ok := v.([]interface{})
		if !ok {
			continue
		}
		var out []string
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}
