package policy

import (
	"context"
	"fmt"
	"time"
)

// Resolution は属性解決の結果を表す。
type Resolution struct {
	Group      *AuthAttributeGroup // 適用された属性グループ
	Attributes []RadiusAttribute   // オーバーライドマージ後の属性リスト
}

// resolver はResolverインターフェースの実装。
type resolver struct {
	store Store
}

// NewResolver は新しいResolverを生成する。
func NewResolver(s Store) Resolver {
	return &resolver{store: s}
}

// Resolve は適用属性グループを決定し、オーバーライドをマージした
// 属性リストを返す。期限切れかつRejectExpiredの識別子は、明示的許可
// エントリのグループ上書きがあっても常にErrIdentifierExpiredで失敗する。
// グループ優先順位:
//  1. 明示的許可エントリのAttributeGroupID
//  2. 期限切れの場合: ExpiredAuthAttributeGroupIDがあればそれを採用
//  3. 識別子のAuthAttributeGroupID
//
// どの段階でもグループが決まらない場合はErrNoAttributeGroup
// （設定不備であり、空属性での許可にはしない）。
// 期限判定は認可判定時ではなく解決時のnowで行う。
func (r *resolver) Resolve(ctx context.Context, ident *Identifier, authz *NasAuthorization, now time.Time) (*Resolution, error) {
	groupID, err := selectGroupID(ident, authz, now)
	if err != nil {
		return nil, err
	}

	group, err := r.store.GetAttributeGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var overrides AttributeOverrides
	if authz != nil {
		overrides = authz.Overrides
	}

	attrs, err := mergeOverrides(group.Attributes, overrides)
	if err != nil {
		return nil, err
	}

	return &Resolution{Group: group, Attributes: attrs}, nil
}

// selectGroupID は適用する属性グループIDを決定する。
func selectGroupID(ident *Identifier, authz *NasAuthorization, now time.Time) (string, error) {
	expired := ident.IsExpired(now)

	// 期限切れの強制拒否はグループ上書きより先に判定する
	if expired && ident.RejectExpired {
		return "", ErrIdentifierExpired
	}

	if authz != nil && authz.AttributeGroupID != "" {
		return authz.AttributeGroupID, nil
	}

	if expired {
		if ident.ExpiredAuthAttributeGroupID != "" {
			return ident.ExpiredAuthAttributeGroupID, nil
		}
		// 期限切れ用グループ未設定の場合は通常デフォルトへフォールスルー
	}

	if ident.AuthAttributeGroupID != "" {
		return ident.AuthAttributeGroupID, nil
	}
	return "", ErrNoAttributeGroup
}

// mergeOverrides はテンプレート属性にオーバーライドをマージする。
// ベース属性はテンプレート定義順を維持し、名前が一致する属性の値を
// 差し替える。一致しないオーバーライドは保持順のまま末尾に追加する。
// 値は宣言された属性型に対して検証し、不一致は解決全体を失敗させる。
func mergeOverrides(base []RadiusAttribute, overrides AttributeOverrides) ([]RadiusAttribute, error) {
	merged := make([]RadiusAttribute, len(base))
	copy(merged, base)

	index := make(map[string]int, len(base))
	for i, attr := range base {
		if _, ok := index[attr.Name]; !ok {
			index[attr.Name] = i
		}
	}

	for _, ov := range overrides {
		if i, ok := index[ov.Name]; ok {
			if err := ValidateValue(merged[i].Type, ov.Value); err != nil {
				return nil, fmt.Errorf("override %q: %w", ov.Name, err)
			}
			merged[i].Value = ov.Value
			continue
		}

		// ベースに存在しない属性は新規追加。型・属性IDは標準属性辞書から
		// 引き、未知の属性名はstring型として扱う。
		attr := RadiusAttribute{Name: ov.Name, Type: TypeString, Value: ov.Value}
		if id, typ, ok := LookupStandardAttribute(ov.Name); ok {
			attr.AttributeID = id
			attr.Type = typ
		}
		if err := ValidateValue(attr.Type, ov.Value); err != nil {
			return nil, fmt.Errorf("override %q: %w", ov.Name, err)
		}
		merged = append(merged, attr)
	}

	return merged, nil
}
