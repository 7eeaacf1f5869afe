// Package server は認可APIのHTTPサーフェスを提供する。
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ilinaya/OpenRDX/internal/config"
	"github.com/ilinaya/OpenRDX/internal/httputil"
	"github.com/ilinaya/OpenRDX/internal/logging"
	"github.com/ilinaya/OpenRDX/internal/policy"
	"github.com/ilinaya/OpenRDX/internal/store"
)

// AuthorizeHandler は認可クエリAPIのハンドラー。
type AuthorizeHandler struct {
	gate     policy.Gate
	resolver policy.Resolver
	cfg      *config.Config
}

// NewAuthorizeHandler は新しいAuthorizeHandlerを生成する。
func NewAuthorizeHandler(gate policy.Gate, resolver policy.Resolver, cfg *config.Config) *AuthorizeHandler {
	return &AuthorizeHandler{
		gate:     gate,
		resolver: resolver,
		cfg:      cfg,
	}
}

// HandleAuthorize はPOST /api/v1/authorize のハンドラー。
// ポリシーによる拒否は200で返し、HTTPエラーは基盤障害に限る。
func (h *AuthorizeHandler) HandleAuthorize(c *gin.Context) {
	traceID, _ := c.Get(TraceIDKey)
	ctx := c.Request.Context()

	// 1. リクエストバインド
	var req AuthorizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body",
			"trace_id", traceID,
			"event_id", "AUTHZ_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return
	}

	masked := logging.MaskIdentifier(req.IdentifierValue, h.cfg.LogMaskIdentifier)

	// 2. 認可判定
	result, err := h.gate.Authorize(ctx, req.IdentifierType, req.IdentifierValue, req.NasID)
	if err != nil {
		h.handleInfraError(c, traceID, masked, err)
		return
	}
	if !result.Allowed {
		code := denyCode(result.DenyReason)
		slog.Info("authorization denied",
			"trace_id", traceID,
			"event_id", "AUTHZ_DENY",
			"identifier", masked,
			"nas_id", req.NasID,
			"reason", code,
		)
		c.JSON(http.StatusOK, AuthorizeResponse{
			Allowed:    false,
			Error:      code,
			Attributes: []policy.RadiusAttribute{},
		})
		return
	}

	// 3. 属性解決（期限判定に使うnowはここで1回だけ取得する）
	now := time.Now()
	resolution, err := h.resolver.Resolve(ctx, result.Identifier, result.Authorization, now)
	if err != nil {
		if code, ok := resolveDenyCode(err); ok {
			slog.Info("authorization denied",
				"trace_id", traceID,
				"event_id", "AUTHZ_DENY",
				"identifier", masked,
				"nas_id", req.NasID,
				"reason", code,
			)
			c.JSON(http.StatusOK, AuthorizeResponse{
				Allowed:    false,
				Error:      code,
				Attributes: []policy.RadiusAttribute{},
			})
			return
		}
		h.handleInfraError(c, traceID, masked, err)
		return
	}

	// 4. 成功レスポンス
	slog.Info("authorization allowed",
		"trace_id", traceID,
		"event_id", "AUTHZ_OK",
		"identifier", masked,
		"nas_id", req.NasID,
		"attribute_group_id", resolution.Group.ID,
	)
	c.JSON(http.StatusOK, AuthorizeResponse{
		Allowed:            true,
		Error:              AuthErrorNone,
		AttributeGroupID:   resolution.Group.ID,
		AttributeGroupName: resolution.Group.Name,
		Attributes:         resolution.Attributes,
	})
}

// handleInfraError は基盤エラーをHTTPエラーに変換する。
func (h *AuthorizeHandler) handleInfraError(c *gin.Context, traceID any, masked string, err error) {
	if errors.Is(err, store.ErrValkeyUnavailable) {
		slog.Error("policy store unavailable",
			"trace_id", traceID,
			"event_id", "AUTHZ_ERR",
			"identifier", masked,
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.ServiceUnavailable("Policy store is unavailable"))
		return
	}

	slog.Error("unexpected error",
		"trace_id", traceID,
		"event_id", "AUTHZ_ERR",
		"identifier", masked,
		"error", err.Error(),
	)
	httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
}
