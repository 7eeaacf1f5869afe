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

func newAdminEngine(t *testing.T, ctrl *gomock.Controller, s policy.Store, n notify.Notifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{LogMaskIdentifier: true}

	engine := gin.New()
	engine.Use(TraceIDMiddleware())
	SetupRouter(engine,
		NewAuthorizeHandler(policy.NewMockGate(ctrl), policy.NewMockResolver(ctrl), cfg),
		NewAdminHandler(s, n, cfg),
	)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func expectRelationshipLookups(ms *policy.MockStore) {
	ms.EXPECT().
		GetIdentifierByID(gomock.Any(), "ident-1").
		Return(&policy.Identifier{ID: "ident-1", UserID: "user-1", AuthAttributeGroupID: "agrp-1"}, nil)
	ms.EXPECT().
		GetUser(gomock.Any(), "user-1").
		Return(&policy.User{ID: "user-1", Email: "alice@example.com", Active: true}, nil)
	ms.EXPECT().
		GetNas(gomock.Any(), "nas-1").
		Return(&policy.NAS{ID: "nas-1", Name: "office-ap-01", IPAddress: "192.0.2.10"}, nil)
}

func TestHandleChangeAttributeGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	overrides := policy.AttributeOverrides{{Name: "Session-Timeout", Value: "600"}}
	ms.EXPECT().
		GetAttributeGroup(gomock.Any(), "agrp-2").
		Return(&policy.AuthAttributeGroup{ID: "agrp-2", Name: "vip-profile"}, nil)
	ms.EXPECT().
		GetAuthorization(gomock.Any(), "ident-1", "nas-1").
		Return(&policy.NasAuthorization{IdentifierID: "ident-1", NasID: "nas-1", Overrides: overrides}, nil)
	expectRelationshipLookups(ms)
	ms.EXPECT().
		UpdateAuthorizationGroup(gomock.Any(), "ident-1", "nas-1", "agrp-2").
		Return(nil)

	// 変更1回につきイベントは正確に1件
	mn.EXPECT().
		Notify(gomock.Any(), notify.ActionChangeAttributeGroup, gomock.Any()).
		Times(1).
		Do(func(_ any, _ notify.Action, rel *notify.Relationship) {
			if rel.UserID != "user-1" || rel.Username != "alice@example.com" {
				t.Errorf("relationship user fields = %+v", rel)
			}
			if rel.NasID != "nas-1" || rel.NasIP != "192.0.2.10" || rel.NasName != "office-ap-01" {
				t.Errorf("relationship nas fields = %+v", rel)
			}
			if rel.AttributeGroupID != "agrp-2" || rel.AttributeGroupName != "vip-profile" {
				t.Errorf("relationship group fields = %+v", rel)
			}
			if len(rel.Overrides) != 1 || rel.Overrides[0].Name != "Session-Timeout" {
				t.Errorf("relationship overrides = %+v", rel.Overrides)
			}
		})

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine,
		"/api/v1/authorizations/ident-1/nas-1/change-attribute-group",
		`{"attribute_group_id":"agrp-2"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var resp ChangeAttributeGroupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal failed: %v", err)
	}
	if resp.AttributeGroupID != "agrp-2" || resp.IdentifierID != "ident-1" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHandleChangeAttributeGroupGroupNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	ms.EXPECT().
		GetAttributeGroup(gomock.Any(), "agrp-x").
		Return(nil, policy.ErrAttributeGroupNotFound)

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine,
		"/api/v1/authorizations/ident-1/nas-1/change-attribute-group",
		`{"attribute_group_id":"agrp-x"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleChangeAttributeGroupAuthorizationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	ms.EXPECT().
		GetAttributeGroup(gomock.Any(), "agrp-2").
		Return(&policy.AuthAttributeGroup{ID: "agrp-2", Name: "vip-profile"}, nil)
	ms.EXPECT().
		GetAuthorization(gomock.Any(), "ident-1", "nas-9").
		Return(nil, policy.ErrAuthorizationNotFound)

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine,
		"/api/v1/authorizations/ident-1/nas-9/change-attribute-group",
		`{"attribute_group_id":"agrp-2"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

// 更新が失敗した場合はイベントを発行しないこと。
func TestHandleChangeAttributeGroupUpdateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	ms.EXPECT().
		GetAttributeGroup(gomock.Any(), "agrp-2").
		Return(&policy.AuthAttributeGroup{ID: "agrp-2", Name: "vip-profile"}, nil)
	ms.EXPECT().
		GetAuthorization(gomock.Any(), "ident-1", "nas-1").
		Return(&policy.NasAuthorization{IdentifierID: "ident-1", NasID: "nas-1"}, nil)
	expectRelationshipLookups(ms)
	ms.EXPECT().
		UpdateAuthorizationGroup(gomock.Any(), "ident-1", "nas-1", "agrp-2").
		Return(fmt.Errorf("%w: connection refused", store.ErrValkeyUnavailable))

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine,
		"/api/v1/authorizations/ident-1/nas-1/change-attribute-group",
		`{"attribute_group_id":"agrp-2"}`)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
}

func TestHandleChangeAttributeGroupBadRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine,
		"/api/v1/authorizations/ident-1/nas-1/change-attribute-group",
		`{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestHandleReauth(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	ms.EXPECT().
		GetAuthorization(gomock.Any(), "ident-1", "nas-1").
		Return(&policy.NasAuthorization{IdentifierID: "ident-1", NasID: "nas-1", AttributeGroupID: "agrp-2"}, nil)
	expectRelationshipLookups(ms)
	ms.EXPECT().
		GetAttributeGroup(gomock.Any(), "agrp-2").
		Return(&policy.AuthAttributeGroup{ID: "agrp-2", Name: "vip-profile"}, nil)

	mn.EXPECT().
		Notify(gomock.Any(), notify.ActionReauth, gomock.Any()).
		Times(1).
		Do(func(_ any, _ notify.Action, rel *notify.Relationship) {
			if rel.AttributeGroupID != "agrp-2" || rel.AttributeGroupName != "vip-profile" {
				t.Errorf("relationship group fields = %+v", rel)
			}
		})

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine, "/api/v1/authorizations/ident-1/nas-1/reauth", "")

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", w.Code, w.Body.String())
	}
}

// エントリに上書きグループがない場合は識別子のデフォルトグループを載せること。
func TestHandleReauthDefaultGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	ms.EXPECT().
		GetAuthorization(gomock.Any(), "ident-1", "nas-1").
		Return(&policy.NasAuthorization{IdentifierID: "ident-1", NasID: "nas-1"}, nil)
	expectRelationshipLookups(ms)
	ms.EXPECT().
		GetAttributeGroup(gomock.Any(), "agrp-1").
		Return(&policy.AuthAttributeGroup{ID: "agrp-1", Name: "standard-profile"}, nil)

	mn.EXPECT().
		Notify(gomock.Any(), notify.ActionReauth, gomock.Any()).
		Do(func(_ any, _ notify.Action, rel *notify.Relationship) {
			if rel.AttributeGroupID != "agrp-1" {
				t.Errorf("AttributeGroupID = %q, want agrp-1", rel.AttributeGroupID)
			}
		})

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine, "/api/v1/authorizations/ident-1/nas-1/reauth", "")

	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
}

func TestHandleReauthAuthorizationNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	ms := policy.NewMockStore(ctrl)
	mn := notify.NewMockNotifier(ctrl)

	ms.EXPECT().
		GetAuthorization(gomock.Any(), "ident-1", "nas-9").
		Return(nil, policy.ErrAuthorizationNotFound)

	engine := newAdminEngine(t, ctrl, ms, mn)
	w := postJSON(t, engine, "/api/v1/authorizations/ident-1/nas-9/reauth", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
