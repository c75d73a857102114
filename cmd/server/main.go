package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"levels_backend/internal/app/di"
	"levels_backend/internal/app/router"
	analysishandler "levels_backend/internal/feature/analysis/transport/handler"
	analysisusecase "levels_backend/internal/feature/analysis/usecase"
	authadapters "levels_backend/internal/feature/auth/adapters"
	authhandler "levels_backend/internal/feature/auth/transport/handler"
	authusecase "levels_backend/internal/feature/auth/usecase"
	candleshandler "levels_backend/internal/feature/candles/transport/handler"
	candlesusecase "levels_backend/internal/feature/candles/usecase"
	"levels_backend/internal/feature/insight/adapters/gemini"
	insighthandler "levels_backend/internal/feature/insight/transport/handler"
	insightusecase "levels_backend/internal/feature/insight/usecase"
	symbollistadapters "levels_backend/internal/feature/symbollist/adapters"
	symbollisthandler "levels_backend/internal/feature/symbollist/transport/handler"
	symbollistusecase "levels_backend/internal/feature/symbollist/usecase"
	"levels_backend/internal/feature/symbolresolve/adapters/vision"
	symbolresolvehandler "levels_backend/internal/feature/symbolresolve/transport/handler"
	symbolresolveusecase "levels_backend/internal/feature/symbolresolve/usecase"
	infradb "levels_backend/internal/platform/db"
	jwtmw "levels_backend/internal/platform/jwt"
	infraredis "levels_backend/internal/platform/redis"
)

func main() {
	// ローカル開発用。.envがなければ環境変数をそのまま使う
	_ = godotenv.Load()

	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis（未設定ならキャッシュなしで起動する）
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		slog.Warn("JWT_SECRET is not set. Set a strong secret in production.")
	}
	jwtGen := jwtmw.NewGenerator(secret, jwtmw.DefaultExpiration)

	// Google Cloudクライアント（ロゴ検出・解説生成）
	logoDetector, err := vision.NewVisionLogoDetector(ctx)
	if err != nil {
		slog.Error("failed to create vision client", "error", err)
		os.Exit(1)
	}
	textGen, err := gemini.NewGeminiGenerator(ctx)
	if err != nil {
		slog.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	symbolRepo := symbollistadapters.NewSymbolRepository(db)
	// Redisが使えるときはキャッシュデコレーター付き
	candleRepo := di.NewCandleRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	symbolUC := symbollistusecase.NewSymbolUsecase(symbolRepo)
	candlesUC := candlesusecase.NewCandlesUsecase(candleRepo)
	analysisUC := analysisusecase.NewAnalysisUsecase(candleRepo)
	insightUC := insightusecase.NewInsightUsecase(analysisUC, textGen)
	resolveUC := symbolresolveusecase.NewSymbolResolveUsecase(logoDetector, symbolRepo)

	// ルータ生成
	r := router.NewRouter(router.Handlers{
		Auth:          authhandler.NewAuthHandler(authUC),
		Analysis:      analysishandler.NewAnalysisHandler(analysisUC),
		Insight:       insighthandler.NewInsightHandler(insightUC),
		Candles:       candleshandler.NewCandlesHandler(candlesUC),
		Symbols:       symbollisthandler.NewSymbolHandler(symbolUC),
		SymbolResolve: symbolresolvehandler.NewSymbolResolveHandler(resolveUC),
	})

	if err := r.Run(":8080"); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
