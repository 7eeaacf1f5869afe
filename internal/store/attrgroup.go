package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// attrGroupRow は属性グループHashのフィールド定義。
// attributesはテンプレート定義順を保持するJSON配列で格納する。
type attrGroupRow struct {
	ID         string `redis:"id"`
	Name       string `redis:"name"`
	System     bool   `redis:"is_system"`
	Attributes string `redis:"attributes"`
}

// GetAttributeGroup は指定IDの属性グループを属性リスト込みで取得する。
func (s *policyStore) GetAttributeGroup(ctx context.Context, id string) (*policy.AuthAttributeGroup, error) {
	m, err := s.getHash(ctx, KeyPrefixAttrGroup+id)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, policy.ErrAttributeGroupNotFound
		}
		return nil, err
	}

	var row attrGroupRow
	if err := MapToStruct(m, &row); err != nil {
		return nil, fmt.Errorf("attribute group %s: %w", id, err)
	}

	group := &policy.AuthAttributeGroup{
		ID:     row.ID,
		Name:   row.Name,
		System: row.System,
	}
	if row.Attributes != "" {
		if err := json.Unmarshal([]byte(row.Attributes), &group.Attributes); err != nil {
			return nil, fmt.Errorf("attribute group %s: invalid attributes: %w", id, err)
		}
	}
	return group, nil
}
