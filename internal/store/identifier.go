package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// identifierRow は識別子Hashのフィールド定義。
type identifierRow struct {
	ID                          string `redis:"id"`
	UserID                      string `redis:"user_id"`
	TypeCode                    string `redis:"type"`
	Value                       string `redis:"value"`
	PlainPassword               string `redis:"plain_password"`
	Enabled                     bool   `redis:"is_enabled"`
	Comment                     string `redis:"comment"`
	ExpirationDate              string `redis:"expiration_date"`
	RejectExpired               bool   `redis:"reject_expired"`
	AuthAttributeGroupID        string `redis:"auth_attribute_group_id"`
	ExpiredAuthAttributeGroupID string `redis:"expired_auth_attribute_group_id"`
}

// GetIdentifier は (種別, 値) で識別子を取得する。
func (s *policyStore) GetIdentifier(ctx context.Context, typeCode, value string) (*policy.Identifier, error) {
	return s.getIdentifierByKey(ctx, IdentifierKey(typeCode, value))
}

// GetIdentifierByID は識別子IDで識別子を取得する。
// identidx:{id} に主キーを保持するインデックス経由で引く。
func (s *policyStore) GetIdentifierByID(ctx context.Context, id string) (*policy.Identifier, error) {
	key, err := s.vc.Client().Get(ctx, KeyPrefixIdentifierID+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, policy.ErrIdentifierNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	return s.getIdentifierByKey(ctx, key)
}

func (s *policyStore) getIdentifierByKey(ctx context.Context, key string) (*policy.Identifier, error) {
	m, err := s.getHash(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, policy.ErrIdentifierNotFound
		}
		return nil, err
	}

	var row identifierRow
	if err := MapToStruct(m, &row); err != nil {
		return nil, fmt.Errorf("identifier %s: %w", key, err)
	}

	ident := &policy.Identifier{
		ID:                          row.ID,
		UserID:                      row.UserID,
		TypeCode:                    row.TypeCode,
		Value:                       row.Value,
		PlainPassword:               row.PlainPassword,
		Enabled:                     row.Enabled,
		Comment:                     row.Comment,
		RejectExpired:               row.RejectExpired,
		AuthAttributeGroupID:        row.AuthAttributeGroupID,
		ExpiredAuthAttributeGroupID: row.ExpiredAuthAttributeGroupID,
	}
	if row.ExpirationDate != "" {
		t, err := time.Parse(time.RFC3339, row.ExpirationDate)
		if err != nil {
			return nil, fmt.Errorf("identifier %s: invalid expiration_date %q: %w", key, row.ExpirationDate, err)
		}
		ident.ExpirationDate = &t
	}
	return ident, nil
}
