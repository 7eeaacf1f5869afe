package policy

import (
	"testing"
	"time"
)

func TestIsExpired(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expiration *time.Time
		want       bool
	}{
		{"期限なし", nil, false},
		{"未来の期限", timePtr(now.Add(time.Hour)), false},
		{"過去の期限", timePtr(now.Add(-time.Hour)), true},
		{"ちょうど期限時刻", timePtr(now), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ident := &Identifier{ExpirationDate: tt.expiration}
			if got := ident.IsExpired(now); got != tt.want {
				t.Errorf("IsExpired = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLookupStandardAttribute(t *testing.T) {
	id, typ, ok := LookupStandardAttribute("Session-Timeout")
	if !ok {
		t.Fatal("Session-Timeout should be in the dictionary")
	}
	if id != 27 {
		t.Errorf("id = %d, want 27", id)
	}
	if typ != TypeInteger {
		t.Errorf("typ = %q, want integer", typ)
	}

	if _, _, ok := LookupStandardAttribute("X-Unknown"); ok {
		t.Error("unknown attribute should not resolve")
	}
}
