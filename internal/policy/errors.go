package policy

import "errors"

// 認可判定エラー
var (
	// ErrIdentifierNotFound は識別子が見つからない場合のエラー
	ErrIdentifierNotFound = errors.New("identifier not found")

	// ErrIdentifierDisabled は識別子が無効化されている場合のエラー
	ErrIdentifierDisabled = errors.New("identifier disabled")

	// ErrNasNotAuthorized は識別子が対象NASへの接続を許可されていない場合のエラー
	ErrNasNotAuthorized = errors.New("nas not authorized")
)

// 属性解決エラー
var (
	// ErrIdentifierExpired は有効期限切れ識別子が拒否された場合のエラー
	ErrIdentifierExpired = errors.New("identifier expired")

	// ErrNoAttributeGroup は属性グループが解決できない場合のエラー。
	// 設定不備であり、通常の拒否とは区別してログ・監視される。
	ErrNoAttributeGroup = errors.New("no attribute group resolved")

	// ErrAttributeTypeMismatch はオーバーライド値が属性型と一致しない場合のエラー。
	// 設定不備であり、暗黙の型変換は行わない。
	ErrAttributeTypeMismatch = errors.New("attribute type mismatch")
)

// エンティティ参照エラー
var (
	// ErrAttributeGroupNotFound は属性グループが見つからない場合のエラー
	ErrAttributeGroupNotFound = errors.New("attribute group not found")

	// ErrNasNotFound はNASが見つからない場合のエラー
	ErrNasNotFound = errors.New("nas not found")

	// ErrUserNotFound はユーザーが見つからない場合のエラー
	ErrUserNotFound = errors.New("user not found")

	// ErrAuthorizationNotFound は明示的許可エントリが見つからない場合のエラー
	ErrAuthorizationNotFound = errors.New("authorization not found")
)
