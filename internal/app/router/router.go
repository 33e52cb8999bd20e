package router

import (
	authhandler "card_backend/internal/feature/auth/transport/handler"
	binderhandler "card_backend/internal/feature/binder/transport/handler"
	cataloghandler "card_backend/internal/feature/catalog/transport/handler"
	"card_backend/internal/platform/http/handler"
	jwtmw "card_backend/internal/platform/jwt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, cards *cataloghandler.CardHandler,
	binders *binderhandler.BinderHandler) *gin.Engine {
	r := gin.Default()
	// CORS のデフォルト設定を有効
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// カタログ閲覧は認証不要
	// 固定パス（/cards/sets 等）は :id より先に登録しないとマッチしない
	r.GET("/cards", cards.List)
	r.GET("/cards/sets", cards.Sets)
	r.GET("/cards/rarities", cards.Rarities)
	r.GET("/cards/types", cards.Types)
	r.GET("/cards/:id", cards.Detail)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/binders", binders.List)
		auth.POST("/binders", binders.Create)
		auth.GET("/binders/:id/cards", binders.Cards)
		auth.POST("/binders/:id/cards", binders.AddCard)
		auth.DELETE("/binders/:id/cards/:cardId", binders.RemoveCard)
	}

	return r
}
