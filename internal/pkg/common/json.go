package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// ParseJSON 解析 JSON 字符串到結構體
func ParseJSON(data string, v interface{}) error {
	return decodeJSON(strings.NewReader(data), v)
}

// ParseJSONBytes 解析 JSON 位元組切片到結構體
func ParseJSONBytes(data []byte, v interface{}) error {
	return decodeJSON(bytes.NewReader(data), v)
}

func decodeJSON(r io.Reader, v interface{}) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}

	// 確保沒有多餘資料
	for {
		t, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		// 若讀到額外 token，視為錯誤
		if t != nil {
			return fmt.Errorf("unexpected extra JSON data")
		}
	}
}

var unquotedKeyPattern = regexp.MustCompile(`([{\[,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// QuoteJSONKeys 將未加雙引號的鍵補上雙引號
func QuoteJSONKeys(raw string) string {
	return repairOutsideStrings(raw, func(s string) string {
		return unquotedKeyPattern.ReplaceAllString(s, `$1"$2":`)
	})
}

var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// StripTrailingCommas 移除 } 或 ] 前多餘的逗號
func StripTrailingCommas(raw string) string {
	return repairOutsideStrings(raw, func(s string) string {
		return trailingCommaPattern.ReplaceAllString(s, `$1`)
	})
}

// repairOutsideStrings 只對字串常值以外的片段套用修復。
// 值裡剛好長得像 `, note:` 或 `,]` 的文字不能被改到。
func repairOutsideStrings(raw string, repair func(string) string) string {
	var b strings.Builder
	b.Grow(len(raw))

	start := 0
	inString := false
	escaped := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
				b.WriteString(raw[start : i+1])
				start = i + 1
			}
			continue
		}
		if c == '"' {
			b.WriteString(repair(raw[start:i]))
			start = i
			inString = true
		}
	}

	if inString {
		// 未閉合的字串照抄，讓後續解碼去報錯
		b.WriteString(raw[start:])
	} else {
		b.WriteString(repair(raw[start:]))
	}
	return b.String()
}

// CollapseWhitespace 將換行、tab 與連續空白折疊成單一空格。
// 刻意連字串內一起折疊：模型常在字串值裡塞進 JSON 不允許的裸換行。
func CollapseWhitespace(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
