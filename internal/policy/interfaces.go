package policy

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=policy

import (
	"context"
	"time"
)

// Store はポリシーデータへの読み取りアクセスと、
// 管理操作が必要とする最小限の書き込みを定義する。
type Store interface {
	// GetIdentifier は (種別, 値) で識別子を取得する。
	GetIdentifier(ctx context.Context, typeCode, value string) (*Identifier, error)

	// GetIdentifierByID は識別子IDで識別子を取得する。
	GetIdentifierByID(ctx context.Context, id string) (*Identifier, error)

	// GetUser は指定IDのユーザーを取得する。
	GetUser(ctx context.Context, id string) (*User, error)

	// ListUserGroups は全ユーザーグループを取得する。
	ListUserGroups(ctx context.Context) ([]*UserGroup, error)

	// ListNasGroups は全NASグループを取得する。
	ListNasGroups(ctx context.Context) ([]*NasGroup, error)

	// GetNas は指定IDのNASを取得する。
	GetNas(ctx context.Context, id string) (*NAS, error)

	// GetAuthorization は (識別子, NAS) の明示的許可エントリを取得する。
	// 存在しない場合はErrAuthorizationNotFoundを返す。
	GetAuthorization(ctx context.Context, identifierID, nasID string) (*NasAuthorization, error)

	// GetAttributeGroup は指定IDの属性グループを属性リスト込みで取得する。
	GetAttributeGroup(ctx context.Context, id string) (*AuthAttributeGroup, error)

	// UpdateAuthorizationGroup は許可エントリの属性グループを差し替える。
	UpdateAuthorizationGroup(ctx context.Context, identifierID, nasID, attributeGroupID string) error
}

// Gate は (識別子, NAS) の認可判定を定義する。
type Gate interface {
	// Authorize は識別子が指定NAS経由で認証してよいかを判定する。
	// ポリシーによる拒否はAdmissionResult.DenyReasonで表現し、
	// エラーはストア障害等の基盤エラーに限る。
	Authorize(ctx context.Context, typeCode, value, nasID string) (*AdmissionResult, error)
}

// Resolver は認可済みリクエストの属性解決を定義する。
type Resolver interface {
	// Resolve は適用属性グループを決定し、オーバーライドを
	// マージした属性リストを返す。nowは呼び出し側で1回だけ取得する。
	Resolve(ctx context.Context, ident *Identifier, authz *NasAuthorization, now time.Time) (*Resolution, error)
}
