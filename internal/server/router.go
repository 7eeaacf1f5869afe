package server

import (
	"github.com/gin-gonic/gin"
)

// SetupRouter はルーティングを設定する。
func SetupRouter(engine *gin.Engine, ah *AuthorizeHandler, adh *AdminHandler) {
	// ヘルスチェック
	engine.GET("/health", HandleHealth)

	// API v1
	v1 := engine.Group("/api/v1")
	{
		v1.POST("/authorize", ah.HandleAuthorize)

		authz := v1.Group("/authorizations/:identifier_id/:nas_id")
		{
			authz.POST("/change-attribute-group", adh.HandleChangeAttributeGroup)
			authz.POST("/reauth", adh.HandleReauth)
		}
	}
}
