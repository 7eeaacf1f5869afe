package policy

import (
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// AttributeType はRADIUS属性値の型を表す。
type AttributeType string

// 属性型の定義
const (
	TypeString  AttributeType = "string"
	TypeInteger AttributeType = "integer"
	TypeIPAddr  AttributeType = "ipaddr"
	TypeDate    AttributeType = "date"
	TypeOctets  AttributeType = "octets"
)

// IsValid は既知の属性型かどうかを返す。
func (t AttributeType) IsValid() bool {
	switch t {
	case TypeString, TypeInteger, TypeIPAddr, TypeDate, TypeOctets:
		return true
	}
	return false
}

// ValidateValue は値の文字列表現が属性型に適合するかを検証する。
// 不適合の場合はErrAttributeTypeMismatchをラップしたエラーを返す。
// 型変換は行わない（暗黙の補正は設定不備を隠すため）。
func ValidateValue(t AttributeType, value string) error {
	switch t {
	case TypeString:
		return nil

	case TypeInteger:
		// RADIUS integer属性は32bit符号なし整数
		if _, err := strconv.ParseUint(value, 10, 32); err != nil {
			return fmt.Errorf("%w: %q is not a 32-bit unsigned integer", ErrAttributeTypeMismatch, value)
		}
		return nil

	case TypeIPAddr:
		if net.ParseIP(value) == nil {
			return fmt.Errorf("%w: %q is not an IP address", ErrAttributeTypeMismatch, value)
		}
		return nil

	case TypeDate:
		// UNIX秒またはRFC 3339形式を受け付ける
		if _, err := strconv.ParseUint(value, 10, 32); err == nil {
			return nil
		}
		if _, err := time.Parse(time.RFC3339, value); err == nil {
			return nil
		}
		return fmt.Errorf("%w: %q is not a UNIX timestamp or RFC 3339 date", ErrAttributeTypeMismatch, value)

	case TypeOctets:
		s := strings.TrimPrefix(value, "0x")
		if s == "" || len(s)%2 != 0 {
			return fmt.Errorf("%w: %q is not an even-length hex string", ErrAttributeTypeMismatch, value)
		}
		if _, err := hex.DecodeString(s); err != nil {
			return fmt.Errorf("%w: %q is not a hex string", ErrAttributeTypeMismatch, value)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown attribute type %q", ErrAttributeTypeMismatch, string(t))
	}
}
