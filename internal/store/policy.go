package store

import (
	"context"
	"fmt"

	"github.com/ilinaya/OpenRDX/internal/policy"
)

// policyStore はpolicy.Storeインターフェースの実装。
type policyStore struct {
	vc *ValkeyClient
}

// NewPolicyStore は新しいpolicy.Storeを生成する。
func NewPolicyStore(vc *ValkeyClient) policy.Store {
	return &policyStore{vc: vc}
}

// getHash はHashを取得する。キーが存在しない場合はErrKeyNotFoundを返す。
func (s *policyStore) getHash(ctx context.Context, key string) (map[string]string, error) {
	m, err := s.vc.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValkeyUnavailable, err)
	}
	if len(m) == 0 {
		return nil, ErrKeyNotFound
	}
	return m, nil
}
