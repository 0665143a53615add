package recommend

import (
	"testing"

	"device-advisor/internal/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDevices(t *testing.T) []catalog.Device {
	t.Helper()
	store, err := catalog.NewStore()
	require.NoError(t, err)
	return store.Devices()
}

func TestParseResponseCleanArray(t *testing.T) {
	raw := `[
		{"deviceName": "MacBook Pro 16\"", "score": 92, "reasoning": "Strong performer", "pros": ["Fast"], "cons": ["Pricey"]},
		{"deviceName": "ASUS ROG Strix G15", "score": 88, "reasoning": "Gaming power", "pros": ["144Hz"], "cons": ["Heavy"]},
		{"deviceName": "iPhone 15 Pro", "score": 85, "reasoning": "Great phone", "pros": ["Camera"], "cons": ["Storage"]}
	]`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// 順序跟隨模型輸出
	assert.Equal(t, "laptop-1", recs[0].Device.ID)
	assert.Equal(t, "laptop-2", recs[1].Device.ID)
	assert.Equal(t, "mobile-1", recs[2].Device.ID)

	// 合理分數只套用遞減懲罰
	assert.Equal(t, 92, recs[0].Score)
	assert.Equal(t, 85, recs[1].Score)
	assert.Equal(t, 79, recs[2].Score)

	assert.Equal(t, "Strong performer", recs[0].Reasoning)
	assert.Equal(t, []string{"Fast"}, recs[0].Pros)
	assert.Equal(t, []string{"Pricey"}, recs[0].Cons)
}

func TestParseResponseMarkdownFence(t *testing.T) {
	raw := "```json\n[{\"deviceName\": \"Sony WH-1000XM5\", \"score\": 90, \"reasoning\": \"Best ANC\", \"pros\": [\"Quiet\"], \"cons\": [\"Price\"]}]\n```"

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "headphone-1", recs[0].Device.ID)
	assert.Equal(t, 90, recs[0].Score)
}

func TestParseResponseSurroundingProse(t *testing.T) {
	raw := `Sure! Here are my recommendations:
[{"deviceName": "Logitech MX Keys", "score": 87, "reasoning": "Great typing", "pros": ["Quiet keys"], "cons": ["No RGB"]}]
Let me know if you need more details.`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "keyboard-1", recs[0].Device.ID)
}

func TestParseResponseTrailingCommasAndNewlines(t *testing.T) {
	raw := `[
		{
			"deviceName": "Corsair K70 RGB",
			"score": 84,
			"reasoning": "Solid mechanical
board for gaming",
			"pros": ["Cherry MX switches",],
			"cons": ["Wired only",],
		},
	]`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "keyboard-2", recs[0].Device.ID)
	assert.Equal(t, 84, recs[0].Score)
}

func TestParseResponseObjectsWithoutArray(t *testing.T) {
	raw := `{"deviceName": "iPhone 15 Pro", "score": 91, "reasoning": "Top pick", "pros": ["A17 Pro"], "cons": ["Price"]}
{"deviceName": "Samsung Galaxy S24", "score": 86, "reasoning": "Strong alternative", "pros": ["Galaxy AI"], "cons": ["Battery"]}`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "mobile-1", recs[0].Device.ID)
	assert.Equal(t, "mobile-2", recs[1].Device.ID)
}

func TestParseResponseSynonymKeysAndDefaults(t *testing.T) {
	raw := `[
		{"name": "Sony WH-1000XM5", "matchScore": 82, "reason": "Quiet commutes", "advantages": ["ANC"], "drawbacks": ["Bulky"]},
		{"deviceName": "SteelSeries Arctis 7P"}
	]`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// 同義鍵一樣要被接受
	assert.Equal(t, 82, recs[0].Score)
	assert.Equal(t, "Quiet commutes", recs[0].Reasoning)
	assert.Equal(t, []string{"ANC"}, recs[0].Pros)
	assert.Equal(t, []string{"Bulky"}, recs[0].Cons)

	// 缺漏欄位套用預設值：分數 80 再扣位置懲罰
	assert.Equal(t, 77, recs[1].Score)
	assert.Equal(t, "Recommended based on your requirements", recs[1].Reasoning)
	assert.Equal(t, []string{"2.4GHz wireless", "DTS Headphone:X v2.0", "ClearCast microphone"}, recs[1].Pros)
	assert.Equal(t, []string{"Consider your specific needs"}, recs[1].Cons)
}

func TestParseResponseUnknownDeviceDropped(t *testing.T) {
	raw := `[
		{"deviceName": "Totally Made Up Laptop 9000", "score": 99, "reasoning": "Hallucinated", "pros": ["None"], "cons": ["Does not exist"]},
		{"deviceName": "ASUS ROG Strix G15", "score": 88, "reasoning": "Real device", "pros": ["144Hz"], "cons": ["Heavy"]}
	]`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "laptop-2", recs[0].Device.ID)
	// 倖存的條目回到索引 0，不該繼承被丟棄條目的懲罰
	assert.Equal(t, 88, recs[0].Score)
}

func TestParseResponseScoreRepair(t *testing.T) {
	raw := `[
		{"deviceName": "iPhone 15 Pro", "score": 150, "reasoning": "Overexcited model", "pros": ["Camera"], "cons": ["Price"]},
		{"deviceName": "Samsung Galaxy S24", "score": -10, "reasoning": "Confused model", "pros": ["AI"], "cons": ["Battery"]}
	]`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, 95, recs[0].Score)
	assert.Equal(t, 47, recs[1].Score)
}

func TestParseResponseFuzzyDeviceMatch(t *testing.T) {
	devices := testDevices(t)

	cases := []struct {
		name   string
		wantID string
	}{
		{"macbook pro 16", "laptop-1"},
		{"MacBook Pro 16”", "laptop-1"},
		{"Sony WH1000XM5", "headphone-1"},
		{"ASUS ROG Strix G15 Gaming Laptop", "laptop-2"},
	}

	for _, tc := range cases {
		device, ok := matchDevice(tc.name, devices)
		require.True(t, ok, "expected match for %q", tc.name)
		assert.Equal(t, tc.wantID, device.ID, "input %q", tc.name)
	}

	_, ok := matchDevice("Pixel 8 Pro", devices)
	assert.False(t, ok)
}

func TestParseResponsePunctuationInsideStrings(t *testing.T) {
	// 字串值裡的 `, note:` 或 `,]` 不能被修復步驟改壞
	raw := `[{"deviceName": "iPhone 15 Pro", "score": 88, "reasoning": "Great pick, note: check storage tiers, pros: plenty", "pros": ["Camera, note: 48MP"], "cons": ["Price ,]"]}]`

	recs, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Great pick, note: check storage tiers, pros: plenty", recs[0].Reasoning)
	assert.Equal(t, []string{"Camera, note: 48MP"}, recs[0].Pros)
	assert.Equal(t, []string{"Price ,]"}, recs[0].Cons)
}

func TestParseResponseGarbage(t *testing.T) {
	_, err := ParseResponse("I cannot help with that request.", testDevices(t))
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParseResponseIdempotentRepairs(t *testing.T) {
	// 已經乾淨的輸入經過所有修復步驟後不該被改壞
	raw := `[{"deviceName": "Logitech MX Keys", "score": 80, "reasoning": "Clean input", "pros": ["Multi-device"], "cons": ["Price"]}]`

	first, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	second, err := ParseResponse(raw, testDevices(t))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
