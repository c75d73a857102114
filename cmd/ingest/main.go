package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"levels_backend/internal/app/di"
	candleadapters "levels_backend/internal/feature/candles/adapters"
	"levels_backend/internal/feature/candles/usecase"
	symbollistadapters "levels_backend/internal/feature/symbollist/adapters"
	infradb "levels_backend/internal/platform/db"
	"levels_backend/internal/shared/ratelimiter"
)

const (
	// TwelveData無料プランは8リクエスト/分まで
	apiRequestLimit    = 8
	apiRequestInterval = time.Minute
)

func main() {
	_ = godotenv.Load()

	db := infradb.OpenDB()
	marketRepo := di.NewMarket()
	candleRepo := candleadapters.NewCandleRepository(db)
	symbolRepo := symbollistadapters.NewSymbolRepository(db)
	limiter := ratelimiter.NewRateLimiter(apiRequestLimit, apiRequestInterval)
	uc := usecase.NewIngestUsecase(marketRepo, candleRepo, limiter)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	symbols, err := symbolRepo.ListActiveCodes(ctx)
	if err != nil {
		slog.Error("failed to load symbols", "error", err)
		os.Exit(1)
	}

	if err := uc.IngestAll(ctx, symbols); err != nil {
		slog.Error("ingest failed", "error", err)
		os.Exit(1)
	}
	slog.Info("ingest ok", "symbols", len(symbols))
}
