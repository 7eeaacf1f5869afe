package policy

import (
	"context"
	"errors"
)

// AdmissionResult は認可判定の結果を表す。
type AdmissionResult struct {
	Allowed       bool
	Identifier    *Identifier       // 判定対象の識別子（見つかった場合）
	Authorization *NasAuthorization // 明示的許可エントリ（存在した場合のみ）
	DenyReason    error             // 拒否理由（Allowed=falseの場合のみ）
}

// gate はGateインターフェースの実装。
type gate struct {
	store Store
}

// NewGate は新しいGateを生成する。
func NewGate(s Store) Gate {
	return &gate{store: s}
}

// Authorize は識別子が指定NAS経由で認証してよいかを判定する。
// 判定順序:
//  1. 識別子の存在・有効性
//  2. 明示的許可エントリ（存在すればグループ設定に関わらず許可）
//  3. ユーザー自身のAllowAnyNasフラグ（非nilなら採用）
//  4. 所属グループ（祖先含む）のいずれかにAllowAnyNas=trueがあれば許可
//
// 拒否経路では属性グループを一切読み込まない（拒否応答から
// 属性内容が推測できてはならない）。
func (g *gate) Authorize(ctx context.Context, typeCode, value, nasID string) (*AdmissionResult, error) {
	ident, err := g.store.GetIdentifier(ctx, typeCode, value)
	if err != nil {
		if errors.Is(err, ErrIdentifierNotFound) {
			return &AdmissionResult{DenyReason: ErrIdentifierNotFound}, nil
		}
		return nil, err
	}
	if !ident.Enabled {
		return &AdmissionResult{DenyReason: ErrIdentifierDisabled}, nil
	}

	// 明示的許可エントリの有無（存在すれば常に勝つ）
	authz, err := g.store.GetAuthorization(ctx, ident.ID, nasID)
	if err == nil {
		return &AdmissionResult{Allowed: true, Identifier: ident, Authorization: authz}, nil
	}
	if !errors.Is(err, ErrAuthorizationNotFound) {
		return nil, err
	}

	// グループデフォルトへのフォールバック
	user, err := g.store.GetUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}

	if user.AllowAnyNas != nil {
		if *user.AllowAnyNas {
			return &AdmissionResult{Allowed: true, Identifier: ident}, nil
		}
		return &AdmissionResult{Identifier: ident, DenyReason: ErrNasNotAuthorized}, nil
	}

	allowed, err := g.groupsAllowAnyNas(ctx, user.GroupIDs)
	if err != nil {
		return nil, err
	}
	if allowed {
		return &AdmissionResult{Allowed: true, Identifier: ident}, nil
	}
	return &AdmissionResult{Identifier: ident, DenyReason: ErrNasNotAuthorized}, nil
}

// groupsAllowAnyNas は所属グループとその祖先のいずれかに
// AllowAnyNas=trueがあるかを判定する。複数グループのフラグが
// 矛盾する場合は「trueが1つでもあれば許可」とする。
func (g *gate) groupsAllowAnyNas(ctx context.Context, groupIDs []string) (bool, error) {
	if len(groupIDs) == 0 {
		return false, nil
	}

	groups, err := g.store.ListUserGroups(ctx)
	if err != nil {
		return false, err
	}

	byID := make(map[string]*UserGroup, len(groups))
	tree := NewGroupTree()
	for _, grp := range groups {
		byID[grp.ID] = grp
		tree.Add(grp.ID, grp.ParentID)
	}

	for _, id := range groupIDs {
		grp, ok := byID[id]
		if !ok {
			continue
		}
		if grp.AllowAnyNas {
			return true, nil
		}
		for _, ancestorID := range tree.Ancestors(id) {
			if ancestor, ok := byID[ancestorID]; ok && ancestor.AllowAnyNas {
				return true, nil
			}
		}
	}
	return false, nil
}
