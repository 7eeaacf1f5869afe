// Package policy は認可ポリシーモデルと認可判定・属性解決を提供する。
package policy

import "time"

// Identifier はユーザーが認証時に提示するクレデンシャルを表す。
// (UserID, TypeCode, Value) が識別キーとなる。
type Identifier struct {
	ID                          string     // 識別子ID
	UserID                      string     // 所有ユーザーID
	TypeCode                    string     // クレデンシャル種別（"password", "mac" 等）
	Value                       string     // クレデンシャル値
	PlainPassword               string     // 平文パスワード（プロトコルが要求する場合のみ）
	Enabled                     bool       // 有効フラグ
	Comment                     string     // 備考
	ExpirationDate              *time.Time // 有効期限（nilで無期限）
	RejectExpired               bool       // 期限切れ時に認証を拒否するか
	AuthAttributeGroupID        string     // デフォルト属性グループID（空で未設定）
	ExpiredAuthAttributeGroupID string     // 期限切れ時の属性グループID（空で未設定）
}

// IsExpired は解決時刻nowにおいて有効期限切れかどうかを返す。
// 期限はキャッシュせず、呼び出しごとに渡されたnowで評価する。
func (i *Identifier) IsExpired(now time.Time) bool {
	if i.ExpirationDate == nil {
		return false
	}
	return !now.Before(*i.ExpirationDate)
}

// User は加入者を表す。
type User struct {
	ID          string   // ユーザーID
	Email       string   // メールアドレス（username として通知に使用）
	Active      bool     // 有効フラグ
	AllowAnyNas *bool    // 任意NAS許可フラグ（nilでグループ設定に従う）
	GroupIDs    []string // 所属ユーザーグループID
}

// UserGroup はツリー構造のユーザーグループを表す。
type UserGroup struct {
	ID          string // グループID
	Name        string // グループ名
	ParentID    string // 親グループID（空でルート）
	AllowAnyNas bool   // 任意NAS許可のポリシーデフォルト
}

// NAS はネットワークアクセス機器を表す。
type NAS struct {
	ID         string   // NAS ID
	Name       string   // 表示名
	IPAddress  string   // IPアドレスまたはホスト名
	CoAEnabled bool     // CoA有効フラグ
	CoAPort    int      // CoA宛先ポート
	Vendor     string   // ベンダー名（任意）
	Secret     string   // RADIUS共有シークレット（任意）
	GroupIDs   []string // 所属NASグループID
}

// NasGroup はツリー構造のNASグループを表す。
type NasGroup struct {
	ID       string // グループID
	Name     string // グループ名
	ParentID string // 親グループID（空でルート）
}

// AuthAttributeGroup は再利用可能なRADIUS応答属性テンプレートを表す。
type AuthAttributeGroup struct {
	ID         string            // グループID
	Name       string            // グループ名
	System     bool              // システムグループは削除不可
	Attributes []RadiusAttribute // テンプレート定義順の属性リスト
}

// RadiusAttribute はRADIUS応答に含める属性（AVP）を表す。
// (VendorID, AttributeID) はグループ内で一意。
type RadiusAttribute struct {
	VendorID    uint32        `json:"vendor_id"`    // ベンダーID（標準属性は0）
	AttributeID uint32        `json:"attribute_id"` // 属性ID
	Name        string        `json:"name"`         // 属性名
	Type        AttributeType `json:"type"`         // 属性型
	Value       string        `json:"value"`        // 属性値（文字列表現）
}

// NasAuthorization は (識別子, NAS) の明示的許可エントリを表す。
// エントリの存在自体が許可であり、AttributeGroupIDは識別子の
// デフォルトグループを当該NASに限って上書きする。
type NasAuthorization struct {
	IdentifierID     string             // 識別子ID
	NasID            string             // NAS ID
	AttributeGroupID string             // 属性グループID（空でデフォルトに従う）
	Overrides        AttributeOverrides // 属性オーバーライド
}
