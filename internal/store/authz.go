package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// authzRow は明示的許可エントリHashのフィールド定義。
// overridesは挿入順を保持するJSONオブジェクトで格納する。
type authzRow struct {
	IdentifierID     string `redis:"identifier_id"`
	NasID            string `redis:"nas_id"`
	AttributeGroupID string `redis:"attribute_group_id"`
	Overrides        string `redis:"overrides"`
}

// GetAuthorization は (識別子, NAS) の明示的許可エントリを取得する。
// 存在しない場合はpolicy.ErrAuthorizationNotFoundを返す。
func (s *policyStore) GetAuthorization(ctx context.Context, identifierID, nasID string) (*policy.NasAuthorization, error) {
	m, err := s.getHash(ctx, AuthzKey(identifierID, nasID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, policy.ErrAuthorizationNotFound
		}
		return nil, err
	}

	var row authzRow
	if err := MapToStruct(m, &row); err != nil {
		return nil, fmt.Errorf("authorization %s:%s: %w", identifierID, nasID, err)
	}

	authz := &policy.NasAuthorization{
		IdentifierID:     row.IdentifierID,
		NasID:            row.NasID,
		AttributeGroupID: row.AttributeGroupID,
	}
	if row.Overrides != "" {
		if err := json.Unmarshal([]byte(row.Overrides), &authz.Overrides); err != nil {
			return nil, fmt.Errorf("authorization %s:%s: invalid overrides: %w", identifierID, nasID, err)
		}
	}
	return authz, nil
}

// UpdateAuthorizationGroup は許可エントリの属性グループを差し替える。
// エントリが存在しない場合はpolicy.ErrAuthorizationNotFoundを返す。
func (s *policyStore) UpdateAuthorizationGroup(ctx context.Context, identifierID, nasID, attributeGroupID string) error {
	key := AuthzKey(identifierID, nasID)
	n, err := s.vc.Client().Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if n == 0 {
		return policy.ErrAuthorizationNotFound
	}
	if err := s.vc.Client().HSet(ctx, key, "attribute_group_id", attributeGroupID).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return nil
}
