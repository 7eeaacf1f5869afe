// Package notify はポリシー変更時のCoAイベント発行を提供する。
package notify

import (
	"github.com/ilinaya/OpenRDX/internal/policy"
)

// Action はCoAイベントの種別を表す。
type Action string

const (
	// ActionChangeAttributeGroup は属性グループ差し替えを表す。
	ActionChangeAttributeGroup Action = "change_attribute_group"
	// ActionReauth は再認証要求を表す。
	ActionReauth Action = "reauth"
)

// Relationship はCoAイベントの対象となる (ユーザー, NAS) 関係を表す。
// イベント購読側が追加の問い合わせなしで処理できるよう、
// 発行時点のスナップショットを保持する。
type Relationship struct {
	UserID             string
	Username           string // ユーザーのメールアドレス
	NasID              string
	NasIP              string
	NasName            string
	AttributeGroupID   string
	AttributeGroupName string
	Overrides          policy.AttributeOverrides
}

// coaEvent はトピックに発行されるJSONペイロード。
type coaEvent struct {
	Action             string                    `json:"action"`
	UserID             string                    `json:"user_id"`
	Username           string                    `json:"username"`
	NasID              string                    `json:"nas_id"`
	NasIP              string                    `json:"nas_ip"`
	NasName            string                    `json:"nas_name"`
	AttributeGroupID   string                    `json:"attribute_group_id"`
	AttributeGroupName string                    `json:"attribute_group_name"`
	AttributeOverrides policy.AttributeOverrides `json:"attribute_overrides"`
}

func newCoAEvent(action Action, rel *Relationship) *coaEvent {
	overrides := rel.Overrides
	if overrides == nil {
		overrides = policy.AttributeOverrides{}
	}
	return &coaEvent{
		Action:             string(action),
		UserID:             rel.UserID,
		Username:           rel.Username,
		NasID:              rel.NasID,
		NasIP:              rel.NasIP,
		NasName:            rel.NasName,
		AttributeGroupID:   rel.AttributeGroupID,
		AttributeGroupName: rel.AttributeGroupName,
		AttributeOverrides: overrides,
	}
}
