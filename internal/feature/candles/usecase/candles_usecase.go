// Package usecase はローソク足データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"
	"time"

	"levels_backend/internal/feature/candles/domain/entity"
)

const (
	// DefaultInterval はローソク足クエリのデフォルト時間間隔です。
	DefaultInterval = "1day"
	// DefaultRangeDays は期間未指定時に遡るデフォルト日数です。
	// 分析ウィンドウ（60日）と揃えています。
	DefaultRangeDays = 60
)

// CandleRepository はローソク足データの永続化層を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CandleRepository interface {
	// FindRange は指定範囲のローソク足を日付昇順で検索します。
	FindRange(ctx context.Context, symbol, interval string, from, to time.Time) ([]entity.Candle, error)
	// UpsertBatch はローソク足を一括で挿入または更新します。
	UpsertBatch(ctx context.Context, candles []entity.Candle) error
}

// candlesUsecase はローソク足データ操作のユースケースを定義します。
type candlesUsecase struct {
	candle CandleRepository
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(candle CandleRepository) *candlesUsecase {
	return &candlesUsecase{candle: candle}
}

// GetCandles は指定された銘柄・時間間隔・期間のローソク足データを取得します。
// intervalが空の場合は日足、toがゼロ値の場合は当日（UTC）、fromがゼロ値の
// 場合はtoの60日前をそれぞれ使用します。
func (cu *candlesUsecase) GetCandles(ctx context.Context, symbol, interval string, from, to time.Time) ([]entity.Candle, error) {
	if interval == "" {
		interval = DefaultInterval
	}
	if to.IsZero() {
		to = time.Now().UTC().Truncate(24 * time.Hour)
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -DefaultRangeDays)
	}

	cs, err := cu.candle.FindRange(ctx, symbol, interval, from, to)
	if err != nil {
		return nil, err
	}

	return cs, nil
}
