package notify

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=notify

import "context"

// Notifier はCoAイベントの発行を定義する。
type Notifier interface {
	// Notify はイベントを1件発行する。発行はベストエフォートであり、
	// 失敗してもエラーを返さない（ログのみ）。呼び出し元を
	// ブロックしないため、発行自体は非同期に行う。
	Notify(ctx context.Context, action Action, rel *Relationship)
}
