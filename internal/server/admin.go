package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilinaya/OpenRDX/internal/config"
	"github.com/ilinaya/OpenRDX/internal/httputil"
	"github.com/ilinaya/OpenRDX/internal/notify"
	"github.com/ilinaya/OpenRDX/internal/policy"
	"github.com/ilinaya/OpenRDX/internal/store"
)

// AdminHandler は明示的許可エントリへの管理操作APIのハンドラー。
type AdminHandler struct {
	store    policy.Store
	notifier notify.Notifier
	cfg      *config.Config
}

// NewAdminHandler は新しいAdminHandlerを生成する。
func NewAdminHandler(s policy.Store, n notify.Notifier, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		store:    s,
		notifier: n,
		cfg:      cfg,
	}
}

// HandleChangeAttributeGroup は
// POST /api/v1/authorizations/:identifier_id/:nas_id/change-attribute-group のハンドラー。
// 許可エントリの属性グループを差し替え、CoAイベントを1件発行する。
// 発行の失敗はリクエストを失敗させない。
func (h *AdminHandler) HandleChangeAttributeGroup(c *gin.Context) {
	traceID, _ := c.Get(TraceIDKey)
	ctx := c.Request.Context()
	identifierID := c.Param("identifier_id")
	nasID := c.Param("nas_id")

	// 1. リクエストバインド
	var req ChangeAttributeGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid request body",
			"trace_id", traceID,
			"event_id", "ADMIN_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.BadRequest("Invalid request body"))
		return
	}

	// 2. 差し替え先グループの存在確認
	group, err := h.store.GetAttributeGroup(ctx, req.AttributeGroupID)
	if err != nil {
		if errors.Is(err, policy.ErrAttributeGroupNotFound) {
			httputil.WriteError(c, httputil.NotFound("Attribute group not found"))
			return
		}
		h.handleInfraError(c, traceID, err)
		return
	}

	// 3. 対象エントリと通知に必要な関連エンティティの取得
	//    （更新前に揃え、途中失敗で書き込みだけが残らないようにする）
	authz, err := h.store.GetAuthorization(ctx, identifierID, nasID)
	if err != nil {
		h.handleLookupError(c, traceID, err)
		return
	}
	rel, _, err := h.buildRelationship(ctx, identifierID, nasID)
	if err != nil {
		h.handleLookupError(c, traceID, err)
		return
	}
	rel.AttributeGroupID = group.ID
	rel.AttributeGroupName = group.Name
	rel.Overrides = authz.Overrides

	// 4. 更新
	if err := h.store.UpdateAuthorizationGroup(ctx, identifierID, nasID, req.AttributeGroupID); err != nil {
		h.handleLookupError(c, traceID, err)
		return
	}

	slog.Info("attribute group changed",
		"trace_id", traceID,
		"event_id", "ADMIN_GROUP_CHANGED",
		"identifier_id", identifierID,
		"nas_id", nasID,
		"attribute_group_id", group.ID,
	)

	// 5. CoAイベント発行（ベストエフォート）
	h.notifier.Notify(ctx, notify.ActionChangeAttributeGroup, rel)

	c.JSON(http.StatusOK, ChangeAttributeGroupResponse{
		IdentifierID:     identifierID,
		NasID:            nasID,
		AttributeGroupID: group.ID,
	})
}

// HandleReauth は
// POST /api/v1/authorizations/:identifier_id/:nas_id/reauth のハンドラー。
// 現在の設定のまま再認証を促すCoAイベントを1件発行する。
func (h *AdminHandler) HandleReauth(c *gin.Context) {
	traceID, _ := c.Get(TraceIDKey)
	ctx := c.Request.Context()
	identifierID := c.Param("identifier_id")
	nasID := c.Param("nas_id")

	authz, err := h.store.GetAuthorization(ctx, identifierID, nasID)
	if err != nil {
		h.handleLookupError(c, traceID, err)
		return
	}
	rel, ident, err := h.buildRelationship(ctx, identifierID, nasID)
	if err != nil {
		h.handleLookupError(c, traceID, err)
		return
	}
	rel.Overrides = authz.Overrides

	// 現在適用中のグループをイベントに載せる。グループ未設定や
	// 参照先欠損でも再認証要求自体は成立する。
	if groupID := currentGroupID(authz, ident); groupID != "" {
		group, err := h.store.GetAttributeGroup(ctx, groupID)
		switch {
		case err == nil:
			rel.AttributeGroupID = group.ID
			rel.AttributeGroupName = group.Name
		case errors.Is(err, policy.ErrAttributeGroupNotFound):
			rel.AttributeGroupID = groupID
		default:
			h.handleInfraError(c, traceID, err)
			return
		}
	}

	slog.Info("reauth requested",
		"trace_id", traceID,
		"event_id", "ADMIN_REAUTH",
		"identifier_id", identifierID,
		"nas_id", nasID,
	)

	h.notifier.Notify(ctx, notify.ActionReauth, rel)

	c.JSON(http.StatusAccepted, ReauthResponse{Status: "accepted"})
}

// buildRelationship は通知ペイロードに載せる関連エンティティを集める。
func (h *AdminHandler) buildRelationship(ctx context.Context, identifierID, nasID string) (*notify.Relationship, *policy.Identifier, error) {
	ident, err := h.store.GetIdentifierByID(ctx, identifierID)
	if err != nil {
		return nil, nil, err
	}
	user, err := h.store.GetUser(ctx, ident.UserID)
	if err != nil {
		return nil, nil, err
	}
	nas, err := h.store.GetNas(ctx, nasID)
	if err != nil {
		return nil, nil, err
	}

	rel := &notify.Relationship{
		UserID:   user.ID,
		Username: user.Email,
		NasID:    nas.ID,
		NasIP:    nas.IPAddress,
		NasName:  nas.Name,
	}
	return rel, ident, nil
}

// currentGroupID は再認証イベントに載せるグループIDを返す。
// エントリの上書きが優先、なければ識別子のデフォルト。
func currentGroupID(authz *policy.NasAuthorization, ident *policy.Identifier) string {
	if authz.AttributeGroupID != "" {
		return authz.AttributeGroupID
	}
	return ident.AuthAttributeGroupID
}

// handleLookupError は参照系エラーをHTTPエラーに変換する。
func (h *AdminHandler) handleLookupError(c *gin.Context, traceID any, err error) {
	switch {
	case errors.Is(err, policy.ErrAuthorizationNotFound):
		httputil.WriteError(c, httputil.NotFound("Authorization not found"))
	case errors.Is(err, policy.ErrIdentifierNotFound):
		httputil.WriteError(c, httputil.NotFound("Identifier not found"))
	case errors.Is(err, policy.ErrUserNotFound):
		httputil.WriteError(c, httputil.NotFound("User not found"))
	case errors.Is(err, policy.ErrNasNotFound):
		httputil.WriteError(c, httputil.NotFound("NAS not found"))
	default:
		h.handleInfraError(c, traceID, err)
	}
}

// handleInfraError は基盤エラーをHTTPエラーに変換する。
func (h *AdminHandler) handleInfraError(c *gin.Context, traceID any, err error) {
	if errors.Is(err, store.ErrValkeyUnavailable) {
		slog.Error("policy store unavailable",
			"trace_id", traceID,
			"event_id", "ADMIN_ERR",
			"error", err.Error(),
		)
		httputil.WriteError(c, httputil.ServiceUnavailable("Policy store is unavailable"))
		return
	}

	slog.Error("unexpected error",
		"trace_id", traceID,
		"event_id", "ADMIN_ERR",
		"error", err.Error(),
	)
	httputil.WriteError(c, httputil.InternalServerError("An unexpected error occurred"))
}
