package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	analysishandler "levels_backend/internal/feature/analysis/transport/handler"
	authhandler "levels_backend/internal/feature/auth/transport/handler"
	candleshandler "levels_backend/internal/feature/candles/transport/handler"
	insighthandler "levels_backend/internal/feature/insight/transport/handler"
	symbollisthandler "levels_backend/internal/feature/symbollist/transport/handler"
	symbolresolvehandler "levels_backend/internal/feature/symbolresolve/transport/handler"
	"levels_backend/internal/platform/http/handler"
	jwtmw "levels_backend/internal/platform/jwt"
)

// Handlers はルーティングに必要な全ハンドラーをまとめた依存セットです。
type Handlers struct {
	Auth          *authhandler.AuthHandler
	Analysis      *analysishandler.AnalysisHandler
	Insight       *insighthandler.InsightHandler
	Candles       *candleshandler.CandlesHandler
	Symbols       *symbollisthandler.SymbolHandler
	SymbolResolve *symbolresolvehandler.SymbolResolveHandler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	// ブラウザのフロントエンドから叩くためCORSを許可
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", h.Auth.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", h.Auth.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("/analysis/:code", h.Analysis.GetAnalysisHandler)
		auth.GET("/analysis/:code/insight", h.Insight.GetInsightHandler)
		auth.GET("/candles/:code", h.Candles.GetCandlesHandler)
		auth.GET("/symbols", h.Symbols.List)
		auth.POST("/symbols/resolve", h.SymbolResolve.Resolve)
	}

	return r
}
