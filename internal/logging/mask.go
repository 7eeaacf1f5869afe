// Package logging はログ出力用のマスキングユーティリティを提供する。
package logging

// MaskIdentifier は識別子値（ユーザー名・MACアドレス等）をマスキングする。
// 先頭2文字 + マスク文字('*') + 末尾2文字の形式で出力する。
// enabled=falseまたは文字列長が5以下の場合はそのまま返す。
func MaskIdentifier(value string, enabled bool) string {
	if !enabled {
		return value
	}
	return MaskPartial(value, 2, 2, '*')
}

// MaskPartial は文字列の一部をマスキングする。
// keepPrefix: 先頭から保持する文字数
// keepSuffix: 末尾から保持する文字数
// maskChar: マスキングに使用する文字
func MaskPartial(s string, keepPrefix, keepSuffix int, maskChar rune) string {
	runes := []rune(s)
	length := len(runes)

	// 文字列が短すぎる場合はそのまま返す
	if length <= keepPrefix+keepSuffix+1 {
		return s
	}

	result := make([]rune, length)
	for i := 0; i < keepPrefix; i++ {
		result[i] = runes[i]
	}
	for i := keepPrefix; i < length-keepSuffix; i++ {
		result[i] = maskChar
	}
	for i := length - keepSuffix; i < length; i++ {
		result[i] = runes[i]
	}
	return string(result)
}
