package notify

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/ilinaya/OpenRDX/internal/config"
	"github.com/ilinaya/OpenRDX/internal/store"
)

// notifier はNotifierインターフェースの実装。
type notifier struct {
	client *redis.Client
	cb     *gobreaker.CircuitBreaker
	topic  string
}

// NewNotifier は新しいNotifierを生成する。
// 発行障害が管理操作を遅延させないよう、PUBLISHはCircuit Breakerで保護する。
func NewNotifier(vc *store.ValkeyClient, cfg *config.Config) Notifier {
	cbSettings := gobreaker.Settings{
		Name:        config.CBName,
		MaxRequests: config.CBMaxRequests,
		Interval:    config.CBInterval,
		Timeout:     config.CBTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(config.CBFailureThreshold)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			switch to {
			case gobreaker.StateOpen:
				slog.Warn("circuit breaker opened",
					"event_id", "CB_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateHalfOpen:
				slog.Info("circuit breaker half-open",
					"event_id", "CB_HALF_OPEN",
					"cb_name", name,
				)
			case gobreaker.StateClosed:
				slog.Info("circuit breaker closed",
					"event_id", "CB_CLOSE",
					"cb_name", name,
				)
			}
		},
	}

	return &notifier{
		client: vc.Client(),
		cb:     gobreaker.NewCircuitBreaker(cbSettings),
		topic:  cfg.CoATopic,
	}
}

// Notify はイベントを1件発行する。
// 呼び出し元のトランザクションに影響させないため発行は別ゴルーチンで行い、
// リクエストのコンテキストからは切り離す。失敗はログのみで握りつぶす。
func (n *notifier) Notify(ctx context.Context, action Action, rel *Relationship) {
	payload, err := json.Marshal(newCoAEvent(action, rel))
	if err != nil {
		slog.Error("coa event marshal failed",
			"event_id", "COA_PUBLISH_ERR",
			"action", string(action),
			"error", err.Error(),
		)
		return
	}

	go n.publish(string(action), rel.NasID, payload)
}

func (n *notifier) publish(action, nasID string, payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), config.CoAPublishTimeout)
	defer cancel()

	_, err := n.cb.Execute(func() (any, error) {
		return nil, n.client.Publish(ctx, n.topic, payload).Err()
	})
	if err != nil {
		slog.Error("coa publish failed",
			"event_id", "COA_PUBLISH_ERR",
			"action", action,
			"nas_id", nasID,
			"topic", n.topic,
			"error", err.Error(),
		)
		return
	}

	slog.Debug("coa event published",
		"action", action,
		"nas_id", nasID,
		"topic", n.topic,
	)
}
