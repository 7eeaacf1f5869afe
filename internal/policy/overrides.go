package policy

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AttributeOverride は1件の属性オーバーライドを表す。
type AttributeOverride struct {
	Name  string // 属性名
	Value string // 属性値（文字列表現）
}

// AttributeOverrides は挿入順を保持する属性オーバーライドの列。
// JSON上はオブジェクト {"<attr-name>": "<value>", ...} として表現されるが、
// マージ順の決定性のためGoのmapではなく順序付きの列として保持する。
type AttributeOverrides []AttributeOverride

// Get は指定名のオーバーライド値を返す。
func (o AttributeOverrides) Get(name string) (string, bool) {
	for _, ov := range o {
		if ov.Name == name {
			return ov.Value, true
		}
	}
	return "", false
}

// MarshalJSON は保持順のままJSONオブジェクトにエンコードする。
func (o AttributeOverrides) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ov := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ov.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(ov.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON はJSONオブジェクトを出現順のままデコードする。
// 値は文字列・数値・真偽値を受け付け、文字列表現に正規化する。
// 型の適合性検証はマージ時（ValidateValue）に行う。
func (o *AttributeOverrides) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attribute overrides must be a JSON object")
	}

	result := AttributeOverrides{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("attribute override key must be a string")
		}

		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		var value string
		switch v := valTok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			if v {
				value = "true"
			} else {
				value = "false"
			}
		default:
			return fmt.Errorf("attribute override %q has unsupported value type", key)
		}

		result = append(result, AttributeOverride{Name: key, Value: value})
	}

	// 閉じ波括弧
	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = result
	return nil
}
