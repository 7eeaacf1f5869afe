package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// nasRow はNAS Hashのフィールド定義。
type nasRow struct {
	ID         string `redis:"id"`
	Name       string `redis:"name"`
	IPAddress  string `redis:"ip_address"`
	CoAEnabled bool   `redis:"coa_enabled"`
	CoAPort    int    `redis:"coa_port"`
	Vendor     string `redis:"vendor"`
	Secret     string `redis:"secret"`
	GroupIDs   string `redis:"group_ids"`
}

// GetNas は指定IDのNASを取得する。
func (s *policyStore) GetNas(ctx context.Context, id string) (*policy.NAS, error) {
	m, err := s.getHash(ctx, KeyPrefixNas+id)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, policy.ErrNasNotFound
		}
		return nil, err
	}

	var row nasRow
	if err := MapToStruct(m, &row); err != nil {
		return nil, fmt.Errorf("nas %s: %w", id, err)
	}

	nas := &policy.NAS{
		ID:         row.ID,
		Name:       row.Name,
		IPAddress:  row.IPAddress,
		CoAEnabled: row.CoAEnabled,
		CoAPort:    row.CoAPort,
		Vendor:     row.Vendor,
		Secret:     row.Secret,
	}
	if row.GroupIDs != "" {
		if err := json.Unmarshal([]byte(row.GroupIDs), &nas.GroupIDs); err != nil {
			return nil, fmt.Errorf("nas %s: invalid group_ids: %w", id, err)
		}
	}
	return nas, nil
}

// nasGroupRow はNASグループHashのフィールド定義。
type nasGroupRow struct {
	ID       string `redis:"id"`
	Name     string `redis:"name"`
	ParentID string `redis:"parent_id"`
}

// ListNasGroups は全NASグループを取得する。
func (s *policyStore) ListNasGroups(ctx context.Context) ([]*policy.NasGroup, error) {
	ids, err := s.vc.Client().SMembers(ctx, KeyNasGroupIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}

	groups := make([]*policy.NasGroup, 0, len(ids))
	for _, id := range ids {
		m, err := s.vc.Client().HGetAll(ctx, KeyPrefixNasGroup+id).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
		}
		if len(m) == 0 {
			continue
		}
		var row nasGroupRow
		if err := MapToStruct(m, &row); err != nil {
			return nil, fmt.Errorf("nas group %s: %w", id, err)
		}
		groups = append(groups, &policy.NasGroup{
			ID:       row.ID,
			Name:     row.Name,
			ParentID: row.ParentID,
		})
	}
	return groups, nil
}
