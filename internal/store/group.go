package store

import (
	"context"
	"fmt"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// userGroupRow はユーザーグループHashのフィールド定義。
type userGroupRow struct {
	ID          string `redis:"id"`
	Name        string `redis:"name"`
	ParentID    string `redis:"parent_id"`
	AllowAnyNas bool   `redis:"allow_any_nas"`
}

// ListUserGroups は全ユーザーグループを取得する。
// グループIDはidx:ugroupsの集合で管理し、各グループはHashで保持する。
func (s *policyStore) ListUserGroups(ctx context.Context) ([]*policy.UserGroup, error) {
	ids, err := s.vc.Client().SMembers(ctx, KeyUserGroupIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	groups := make([]*policy.UserGroup, 0, len(ids))
	for _, id := range ids {
		m, err := s.vc.Client().HGetAll(ctx, KeyPrefixUserGroup+id).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
		}
		if len(m) == 0 {
			// インデックスだけ残った欠損エントリはスキップする
			continue
		}
		var row userGroupRow
		if err := MapToStruct(m, &row); err != nil {
			return nil, fmt.Errorf("user group %s: %w", id, err)
		}
		groups = append(groups, &policy.UserGroup{
			ID:          row.ID,
			Name:        row.Name,
			ParentID:    row.ParentID,
			AllowAnyNas: row.AllowAnyNas,
		})
	}
	return groups, nil
}
