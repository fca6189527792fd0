// Package mapper 负责外部行模式（lower_snake_case）与内部视图模型之间的双向转换。
// 所有映射函数均为全函数：字段缺失视为无数据而非错误，转换过程不会失败。
package mapper

import (
	"fmt"
	"strconv"
)

// Row 远端表行，列名为lower_snake_case
type Row = map[string]interface{}

func getString(row Row, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.Itoa(int(v))
	case int64:
		return strconv.FormatInt(v, 10)
	}
	return ""
}

func getBool(row Row, key string) bool {
	b, _ := row[key].(bool)
	return b
}

func getInt(row Row, key string) int {
	switch v := row[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// getIntDefault 读取整数，缺失或为零时替换默认值
func getIntDefault(row Row, key string, def int) int {
	if row[key] == nil {
		return def
	}
	n := getInt(row, key)
	if n == 0 {
		return def
	}
	return n
}

func getMap(row Row, key string) map[string]interface{} {
	if m, ok := row[key].(map[string]interface{}); ok && m != nil {
		return m
	}
	return map[string]interface{}{}
}

func getSlice(row Row, key string) []interface{} {
	if s, ok := row[key].([]interface{}); ok {
		return s
	}
	return nil
}

func getStringSlice(row Row, key string) []string {
	result := []string{}
	for _, item := range getSlice(row, key) {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

func subRow(item interface{}) Row {
	if m, ok := item.(map[string]interface{}); ok {
		return m
	}
	return Row{}
}

// CleanNumericString 数值清洗：去掉除数字、小数点和前导负号以外的全部字符。
// 幂等：已清洗的值再次清洗结果不变
func CleanNumericString(s string) string {
	result := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c == '.':
			result = append(result, c)
		case c == '-' && len(result) == 0:
			result = append(result, c)
		}
	}
	return string(result)
}

// CleanNumeric 把自由文本数值清洗并解析为可空数值。
// 清洗后不含数字或无法解析时返回nil，绝不返回0或NaN
func CleanNumeric(s string) *float64 {
	cleaned := CleanNumericString(s)
	hasDigit := false
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] >= '0' && cleaned[i] <= '9' {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}

// numericValue CleanNumeric的写库形态：nil保持为nil，数值解引用
func numericValue(s string) interface{} {
	if f := CleanNumeric(s); f != nil {
		return *f
	}
	return nil
}

// nullifyEmpty 空字符串写库时转为null
func nullifyEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// formatNumeric 可空数值读出时的文本形态
func formatNumeric(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	case int32:
		return strconv.Itoa(int(n))
	case int64:
		return strconv.FormatInt(n, 10)
	case string:
		return n
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}
