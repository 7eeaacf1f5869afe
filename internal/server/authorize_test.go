package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/ilinaya/OpenRDX/internal/config"
	"github.com/ilinaya/OpenRDX/internal/notify"
	"github.com/ilinaya/OpenRDX/internal/policy"
	"github.com/ilinaya/OpenRDX/internal/store"
)

func newTestEngine(t *testing.T, ctrl *gomock.Controller, gate policy.Gate, resolver policy.Resolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{LogMaskIdentifier: true}

	engine := gin.New()
	engine.Use(TraceIDMiddleware())
	SetupRouter(engine,
		NewAuthorizeHandler(gate, resolver, cfg),
		NewAdminHandler(policy.NewMockStore(ctrl), notify.NewMockNotifier(ctrl), cfg),
	)
	return engine
}

func postAuthorize(t *testing.T, engine *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/authorize", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

const authorizeBody = `{"identifier_type":"password","identifier_value":"alice@example.com","nas_id":"nas-1"}`

func TestHandleAuthorizeAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := policy.NewMockGate(ctrl)
	resolver := policy.NewMockResolver(ctrl)

	ident := &policy.Identifier{ID: "ident-1", UserID: "user-1"}
	authz := &policy.NasAuthorization{IdentifierID: "ident-1", NasID: "nas-1"}
	gate.EXPECT().
		Authorize(gomock.Any(), "password", "alice@example.com", "nas-1").
		Return(&policy.AdmissionResult{Allowed: true, Identifier: ident, Authorization: authz}, nil)
	resolver.EXPECT().
		Resolve(gomock.Any(), ident, authz, gomock.Any()).
		Return(&policy.Resolution{
			Group: &policy.AuthAttributeGroup{ID: "agrp-1", Name: "standard-profile"},
			Attributes: []policy.RadiusAttribute{
				{AttributeID: 27, Name: "Session-Timeout", Type: policy.TypeInteger, Value: "3600"},
			},
		}, nil)

	engine := newTestEngine(t, ctrl, gate, resolver)
	w := postAuthorize(t, engine, authorizeBody)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp AuthorizeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if !resp.Allowed || resp.Error != AuthErrorNone {
		t.Errorf("resp = %+v, want allowed with NONE", resp)
	}
	if resp.AttributeGroupID != "agrp-1" || resp.AttributeGroupName != "standard-profile" {
		t.Errorf("group fields = %q/%q", resp.AttributeGroupID, resp.AttributeGroupName)
	}
	if len(resp.Attributes) != 1 || resp.Attributes[0].Value != "3600" {
		t.Errorf("attributes = %+v", resp.Attributes)
	}
}

func TestHandleAuthorizeDenied(t *testing.T) {
	tests := []struct {
		name       string
		denyReason error
		wantCode   string
	}{
		{"識別子なし", policy.ErrIdentifierNotFound, AuthErrorIdentifierNotFound},
		{"識別子無効化済み", policy.ErrIdentifierDisabled, AuthErrorIdentifierNotFound},
		{"NAS許可なし", policy.ErrNasNotAuthorized, AuthErrorNasNotAuthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := policy.NewMockGate(ctrl)
			resolver := policy.NewMockResolver(ctrl)

			gate.EXPECT().
				Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&policy.AdmissionResult{DenyReason: tt.denyReason}, nil)

			engine := newTestEngine(t, ctrl, gate, resolver)
			w := postAuthorize(t, engine, authorizeBody)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var resp AuthorizeResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response unmarshal failed: %v", err)
			}
			if resp.Allowed || resp.Error != tt.wantCode {
				t.Errorf("resp = %+v, want denied with %s", resp, tt.wantCode)
			}
			if resp.Attributes == nil || len(resp.Attributes) != 0 {
				t.Errorf("denied response must carry empty attributes: %+v", resp.Attributes)
			}
		})
	}
}

func TestHandleAuthorizeResolverDenials(t *testing.T) {
	tests := []struct {
		name       string
		resolveErr error
		wantCode   string
	}{
		{"期限切れ", policy.ErrIdentifierExpired, AuthErrorIdentifierExpired},
		{"グループ未設定", policy.ErrNoAttributeGroup, AuthErrorNoAttributeGroup},
		{"参照先グループ欠損", policy.ErrAttributeGroupNotFound, AuthErrorNoAttributeGroup},
		{"型不一致", fmt.Errorf("override %q: %w", "Session-Timeout", policy.ErrAttributeTypeMismatch), AuthErrorAttributeTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gate := policy.NewMockGate(ctrl)
			resolver := policy.NewMockResolver(ctrl)

			ident := &policy.Identifier{ID: "ident-1"}
			gate.EXPECT().
				Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&policy.AdmissionResult{Allowed: true, Identifier: ident}, nil)
			resolver.EXPECT().
				Resolve(gomock.Any(), ident, gomock.Nil(), gomock.Any()).
				Return(nil, tt.resolveErr)

			engine := newTestEngine(t, ctrl, gate, resolver)
			w := postAuthorize(t, engine, authorizeBody)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			var resp AuthorizeResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response unmarshal failed: %v", err)
			}
			if resp.Allowed || resp.Error != tt.wantCode {
				t.Errorf("resp = %+v, want denied with %s", resp, tt.wantCode)
			}
		})
	}
}

func TestHandleAuthorizeStoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := policy.NewMockGate(ctrl)
	resolver := policy.NewMockResolver(ctrl)

	gate.EXPECT().
		Authorize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: connection refused", store.ErrValkeyUnavailable))

	engine := newTestEngine(t, ctrl, gate, resolver)
	w := postAuthorize(t, engine, authorizeBody)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestHandleAuthorizeBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	gate := policy.NewMockGate(ctrl)
	resolver := policy.NewMockResolver(ctrl)

	engine := newTestEngine(t, ctrl, gate, resolver)
	w := postAuthorize(t, engine, `{"identifier_type":"password"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
