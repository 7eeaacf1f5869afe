package notify

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/ilinaya/OpenRDX/internal/config"
	"github.com/ilinaya/OpenRDX/internal/policy"
	"github.com/ilinaya/OpenRDX/internal/store"
)

func newTestConfig(addr string) *config.Config {
	host, port, _ := net.SplitHostPort(addr)
	return &config.Config{
		RedisHost: host,
		RedisPort: port,
		CoATopic:  "radius_coa",
	}
}

func newTestNotifier(t *testing.T, mr *miniredis.Miniredis) (Notifier, *store.ValkeyClient) {
	t.Helper()
	cfg := newTestConfig(mr.Addr())
	vc, err := store.NewValkeyClient(cfg)
	if err != nil {
		t.Fatalf("NewValkeyClient failed: %v", err)
	}
	t.Cleanup(func() { _ = vc.Close() })
	return NewNotifier(vc, cfg), vc
}

func TestNotifyPublishesEvent(t *testing.T) {
	mr := miniredis.RunT(t)
	n, vc := newTestNotifier(t, mr)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	sub := vc.Client().Subscribe(ctx, "radius_coa")
	defer sub.Close()
	// 購読確立を待つ
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	rel := &Relationship{
		UserID:             "user-1",
		Username:           "alice@example.com",
		NasID:              "nas-1",
		NasIP:              "192.0.2.10",
		NasName:            "office-ap-01",
		AttributeGroupID:   "agrp-2",
		AttributeGroupName: "vip-profile",
		Overrides: policy.AttributeOverrides{
			{Name: "Session-Timeout", Value: "600"},
			{Name: "Reply-Message", Value: "vip"},
		},
	}
	n.Notify(context.Background(), ActionChangeAttributeGroup, rel)

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("ReceiveMessage failed: %v", err)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}

	checks := map[string]string{
		"action":               `"change_attribute_group"`,
		"user_id":              `"user-1"`,
		"username":             `"alice@example.com"`,
		"nas_id":               `"nas-1"`,
		"nas_ip":               `"192.0.2.10"`,
		"nas_name":             `"office-ap-01"`,
		"attribute_group_id":   `"agrp-2"`,
		"attribute_group_name": `"vip-profile"`,
	}
	for field, want := range checks {
		if string(got[field]) != want {
			t.Errorf("%s = %s, want %s", field, got[field], want)
		}
	}

	var overrides policy.AttributeOverrides
	if err := json.Unmarshal(got["attribute_overrides"], &overrides); err != nil {
		t.Fatalf("attribute_overrides unmarshal failed: %v", err)
	}
	if len(overrides) != 2 || overrides[0].Name != "Session-Timeout" {
		t.Errorf("attribute_overrides order not preserved: %+v", overrides)
	}
}

func TestNotifyReauthAction(t *testing.T) {
	mr := miniredis.RunT(t)
	n, vc := newTestNotifier(t, mr)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	sub := vc.Client().Subscribe(ctx, "radius_coa")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	n.Notify(context.Background(), ActionReauth, &Relationship{UserID: "user-1", NasID: "nas-1"})

	msg, err := sub.ReceiveMessage(ctx)
	if err != nil {
		t.Fatalf("ReceiveMessage failed: %v", err)
	}

	var got struct {
		Action             string          `json:"action"`
		AttributeOverrides json.RawMessage `json:"attribute_overrides"`
	}
	if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
		t.Fatalf("payload unmarshal failed: %v", err)
	}
	if got.Action != "reauth" {
		t.Errorf("action = %q, want reauth", got.Action)
	}
	// オーバーライド未設定でも空オブジェクトとして出力されること
	if string(got.AttributeOverrides) != "{}" {
		t.Errorf("attribute_overrides = %s, want {}", got.AttributeOverrides)
	}
}

// バス停止中でもNotifyは呼び出し元をブロックせず、パニックもしないこと。
func TestNotifyBusOutageSwallowed(t *testing.T) {
	mr := miniredis.RunT(t)
	n, _ := newTestNotifier(t, mr)
	mr.Close()

	done := make(chan struct{})
	go func() {
		n.Notify(context.Background(), ActionReauth, &Relationship{UserID: "user-1", NasID: "nas-1"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify should return immediately even when the bus is down")
	}

	// 発行ゴルーチンの失敗処理が完了するのを待つ（ログのみで握りつぶされる）
	time.Sleep(100 * time.Millisecond)
}
