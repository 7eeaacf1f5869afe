package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// userRow はユーザーHashのフィールド定義。
// allow_any_nasは三値（空文字列で未設定）のため文字列で保持する。
type userRow struct {
	ID          string `redis:"id"`
	Email       string `redis:"email"`
	Active      bool   `redis:"is_active"`
	AllowAnyNas string `redis:"allow_any_nas"`
	GroupIDs    string `redis:"group_ids"`
}

// GetUser は指定IDのユーザーを取得する。
func (s *policyStore) GetUser(ctx context.Context, id string) (*policy.User, error) {
	m, err := s.getHash(ctx, KeyPrefixUser+id)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, policy.ErrUserNotFound
		}
		return nil, err
	}

	var row userRow
	if err := MapToStruct(m, &row); err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}

	user := &policy.User{
		ID:     row.ID,
		Email:  row.Email,
		Active: row.Active,
	}
	if row.AllowAnyNas != "" {
		b, err := strconv.ParseBool(row.AllowAnyNas)
		if err != nil {
			return nil, fmt.Errorf("user %s: invalid allow_any_nas %q: %w", id, row.AllowAnyNas, err)
		}
		user.AllowAnyNas = &b
	}
	if row.GroupIDs != "" {
		if err := json.Unmarshal([]byte(row.GroupIDs), &user.GroupIDs); err != nil {
			return nil, fmt.Errorf("user %s: invalid group_ids: %w", id, err)
		}
	}
	return user, nil
}
