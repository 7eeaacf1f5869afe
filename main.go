// Package main はRADIUS認可バックボーンのエントリーポイント。
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ilinaya/OpenRDX/internal/config"
	"github.com/ilinaya/OpenRDX/internal/notify"
	"github.com/ilinaya/OpenRDX/internal/policy"
	"github.com/ilinaya/OpenRDX/internal/server"
	"github.com/ilinaya/OpenRDX/internal/store"
)

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("starting authz-server",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"coa_topic", cfg.CoATopic,
	)

	// 3. Valkey接続
	vc, err := store.NewValkeyClient(cfg)
	if err != nil {
		slog.Error("failed to connect to Valkey", "error", err)
		os.Exit(1)
	}
	defer vc.Close()

	// 4. ポリシーストア
	policyStore := store.NewPolicyStore(vc)

	// 5. 認可判定・属性解決
	gate := policy.NewGate(policyStore)
	resolver := policy.NewResolver(policyStore)

	// 6. CoA通知
	notifier := notify.NewNotifier(vc, cfg)

	// 7. ハンドラー
	authorizeHandler := server.NewAuthorizeHandler(gate, resolver, cfg)
	adminHandler := server.NewAdminHandler(policyStore, notifier, cfg)

	// 8. サーバー起動
	srv := server.New(cfg, authorizeHandler, adminHandler)
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 9. シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	h := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(h).With("app", "authz-server")
	slog.SetDefault(logger)
}
