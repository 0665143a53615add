package common

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	err := ParseJSON(`{"a": 1} garbage`, &v)
	assert.Error(t, err)
}

func TestParseJSONUsesNumbers(t *testing.T) {
	var v map[string]interface{}
	require.NoError(t, ParseJSON(`{"score": 85}`, &v))
	assert.Equal(t, json.Number("85"), v["score"])
}

func TestQuoteJSONKeys(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{deviceName: "x", score: 5}`, `{"deviceName": "x", "score": 5}`},
		{`[{a: 1}, {b: 2}]`, `[{"a": 1}, {"b": 2}]`},
		{`{"already": "quoted"}`, `{"already": "quoted"}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, QuoteJSONKeys(tc.in), "input %q", tc.in)
	}
}

func TestQuoteJSONKeysLeavesStringValuesAlone(t *testing.T) {
	// 字串值裡長得像未加引號鍵的文字不能被動到
	in := `{"reasoning": "Good pick, note: check stock", caveat: "minor"}`
	want := `{"reasoning": "Good pick, note: check stock", "caveat": "minor"}`
	assert.Equal(t, want, QuoteJSONKeys(in))
}

func TestStripTrailingCommas(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, StripTrailingCommas(`{"a": 1,}`))
	assert.Equal(t, `["a"]`, StripTrailingCommas(`["a",]`))
	assert.Equal(t, `{"a": [1, 2]}`, StripTrailingCommas(`{"a": [1, 2,],}`))
	assert.Equal(t, `{"a": 1, "b": 2}`, StripTrailingCommas(`{"a": 1, "b": 2}`))
}

func TestStripTrailingCommasLeavesStringValuesAlone(t *testing.T) {
	in := `{"note": "list ends with ,]", "escaped": "quote \" then ,}"}`
	assert.Equal(t, in, StripTrailingCommas(in))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CollapseWhitespace("{\"a\":\n\t 1}"))
	assert.Equal(t, "a b c", CollapseWhitespace("  a \n b \t c  "))
}
