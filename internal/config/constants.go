package config

import "time"

// Valkey接続設定
const (
	ValkeyConnectTimeout = 3 * time.Second
	ValkeyCommandTimeout = 2 * time.Second
	ValkeyPoolSize       = 10
	ValkeyMinIdleConns   = 2
)

// CoA通知設定
const (
	// CoAPublishTimeout はPUBLISH 1回あたりの上限時間。
	// 管理系リクエストのレイテンシをバス障害から切り離すため短く抑える。
	CoAPublishTimeout = 2 * time.Second
)

// Circuit Breaker設定（CoA通知用）
const (
	CBName             = "coa-publish"
	CBMaxRequests      = 1
	CBInterval         = 60 * time.Second
	CBTimeout          = 30 * time.Second
	CBFailureThreshold = 3
)

// HTTPサーバー設定
const (
	ShutdownTimeout = 5 * time.Second
)
