package recommend

import (
	"fmt"
	"strings"

	"device-advisor/internal/core/catalog"
)

// BuildPrompt 把推薦請求與該分類的裝置子集組裝成單一指令字串。
// 輸入相同則輸出相同，沒有副作用；裝置清單必須已先按分類過濾，
// 這裡只轉寫型錄資料，不會捏造清單外的裝置。
func BuildPrompt(req *Request, devices []catalog.Device) string {
	var deviceLines []string
	for _, d := range devices {
		features := d.Features
		if len(features) > 3 {
			features = features[:3]
		}
		line := fmt.Sprintf("- %s by %s - $%.0f - Rating: %.1f/5 - Features: %s",
			d.Name, d.Brand, d.Price, d.Rating, strings.Join(features, ", "))
		if proc, ok := d.Specs["processor"]; ok {
			line += fmt.Sprintf(" - Processor: %s", proc)
		}
		deviceLines = append(deviceLines, line)
	}

	budgetText := "No specific budget"
	if req.Budget != nil && req.Budget.Max > 0 {
		budgetText = fmt.Sprintf("$%.0f - $%.0f", req.Budget.Min, req.Budget.Max)
	}

	preferencesText := "None specified"
	if len(req.Preferences) > 0 {
		preferencesText = strings.Join(req.Preferences, ", ")
	}

	var sb strings.Builder
	sb.WriteString("You are an expert device recommendation assistant. Analyze these user requirements and recommend exactly 3 devices that best match their needs.\n\n")

	sb.WriteString("USER REQUIREMENTS:\n")
	fmt.Fprintf(&sb, "- Category: %s\n", req.Category)
	fmt.Fprintf(&sb, "- Budget Range: %s\n", budgetText)
	fmt.Fprintf(&sb, "- Usage: %s\n", req.Usage)
	fmt.Fprintf(&sb, "- Experience Level: %s\n", req.Experience)
	fmt.Fprintf(&sb, "- Preferences: %s\n", preferencesText)

	sb.WriteString("\nAVAILABLE DEVICES:\n")
	sb.WriteString(strings.Join(deviceLines, "\n"))
	sb.WriteString("\n")

	sb.WriteString(`
INSTRUCTIONS:
1. Analyze the user's requirements carefully
2. Consider budget constraints, usage patterns, and experience level
3. Recommend exactly 3 devices from the list above
4. Provide clear reasoning for each recommendation
5. Include specific pros and cons
`)

	// 以共用的關鍵字萃取結果加強指示
	if hints := extractUsageProfile(req.Usage).hints(); len(hints) > 0 {
		fmt.Fprintf(&sb, "6. Pay particular attention to %s when ranking\n", strings.Join(hints, " and "))
	}

	sb.WriteString(`
RESPONSE FORMAT:
Respond with valid JSON only in this exact format:
[
  {
    "deviceName": "Exact device name from the list above",
    "score": 85,
    "reasoning": "Clear explanation why this device fits the user's specific needs and usage requirements",
    "pros": ["Specific advantage 1", "Specific advantage 2", "Specific advantage 3"],
    "cons": ["Potential limitation 1", "Potential limitation 2"]
  }
]

Important: deviceName must exactly match a name from the list above. Respond with ONLY the JSON array, no additional text or formatting.`)

	return sb.String()
}
