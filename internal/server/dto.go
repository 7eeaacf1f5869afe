package server

import (
	"errors"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// 認可結果のエラーコード。allowed=falseの理由をNAS側実装が
// 分岐できる粒度で表す。
const (
	AuthErrorNone                  = "NONE"
	AuthErrorIdentifierNotFound    = "IDENTIFIER_NOT_FOUND"
	AuthErrorNasNotAuthorized      = "NAS_NOT_AUTHORIZED"
	AuthErrorIdentifierExpired     = "IDENTIFIER_EXPIRED"
	AuthErrorNoAttributeGroup      = "NO_ATTRIBUTE_GROUP"
	AuthErrorAttributeTypeMismatch = "ATTRIBUTE_TYPE_MISMATCH"
)

// AuthorizeRequest はPOST /api/v1/authorize のリクエストボディ。
type AuthorizeRequest struct {
	IdentifierType  string `json:"identifier_type" binding:"required"`
	IdentifierValue string `json:"identifier_value" binding:"required"`
	NasID           string `json:"nas_id" binding:"required"`
}

// AuthorizeResponse はPOST /api/v1/authorize のレスポンスボディ。
type AuthorizeResponse struct {
	Allowed            bool                     `json:"allowed"`
	Error              string                   `json:"error"`
	AttributeGroupID   string                   `json:"attribute_group_id,omitempty"`
	AttributeGroupName string                   `json:"attribute_group_name,omitempty"`
	Attributes         []policy.RadiusAttribute `json:"attributes"`
}

// ChangeAttributeGroupRequest は属性グループ差し替えのリクエストボディ。
type ChangeAttributeGroupRequest struct {
	AttributeGroupID string `json:"attribute_group_id" binding:"required"`
}

// ChangeAttributeGroupResponse は属性グループ差し替えのレスポンスボディ。
type ChangeAttributeGroupResponse struct {
	IdentifierID     string `json:"identifier_id"`
	NasID            string `json:"nas_id"`
	AttributeGroupID string `json:"attribute_group_id"`
}

// ReauthResponse は再認証要求のレスポンスボディ。
type ReauthResponse struct {
	Status string `json:"status"`
}

// denyCode は認可判定の拒否理由をエラーコードへ変換する。
// 無効化された識別子は存在しない識別子と区別できない応答にする。
func denyCode(reason error) string {
	switch {
	case errors.Is(reason, policy.ErrIdentifierNotFound),
		errors.Is(reason, policy.ErrIdentifierDisabled):
		return AuthErrorIdentifierNotFound
	default:
		return AuthErrorNasNotAuthorized
	}
}

// resolveDenyCode は属性解決のエラーをエラーコードへ変換する。
// ポリシー起因でないエラー（ストア障害等）はok=falseを返す。
func resolveDenyCode(err error) (string, bool) {
	switch {
	case errors.Is(err, policy.ErrIdentifierExpired):
		return AuthErrorIdentifierExpired, true
	case errors.Is(err, policy.ErrNoAttributeGroup),
		errors.Is(err, policy.ErrAttributeGroupNotFound):
		return AuthErrorNoAttributeGroup, true
	case errors.Is(err, policy.ErrAttributeTypeMismatch):
		return AuthErrorAttributeTypeMismatch, true
	default:
		return "", false
	}
}
