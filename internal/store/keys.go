package store

// Valkeyキー設計
//
//	ident:{type}:{value}        識別子（Hash）
//	identidx:{id}               識別子ID→主キーの索引（String）
//	user:{id}                   ユーザー（Hash）
//	ugroup:{id}                 ユーザーグループ（Hash）
//	idx:ugroups                 全ユーザーグループIDの集合（Set）
//	nas:{id}                    NAS（Hash）
//	ngroup:{id}                 NASグループ（Hash）
//	idx:ngroups                 全NASグループIDの集合（Set）
//	agrp:{id}                   属性グループ（Hash、attributesはJSON配列）
//	authz:{identifier_id}:{nas_id} 明示的許可エントリ（Hash、overridesはJSONオブジェクト）
const (
	KeyPrefixIdentifier   = "ident:"
	KeyPrefixIdentifierID = "identidx:"
	KeyPrefixUser         = "user:"
	KeyPrefixUserGroup    = "ugroup:"
	KeyPrefixNas          = "nas:"
	KeyPrefixNasGroup     = "ngroup:"
	KeyPrefixAttrGroup    = "agrp:"
	KeyPrefixAuthz        = "authz:"

	KeyUserGroupIndex = "idx:ugroups"
	KeyNasGroupIndex  = "idx:ngroups"
)

// IdentifierKey は識別子のキーを組み立てる。
func IdentifierKey(typeCode, value string) string {
	return KeyPrefixIdentifier + typeCode + ":" + value
}

// AuthzKey は明示的許可エントリのキーを組み立てる。
func AuthzKey(identifierID, nasID string) string {
	return KeyPrefixAuthz + identifierID + ":" + nasID
}
