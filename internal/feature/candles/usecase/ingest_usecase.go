package usecase

import (
	"context"
	"log/slog"

	"levels_backend/internal/feature/candles/domain/entity"
	"levels_backend/internal/shared/ratelimiter"
)

const (
	// 1銘柄あたりの取得本数。分析のルックバック(60日)に対して十分な余裕を持たせる
	ingestOutputSize = 200
	ingestInterval   = "1day"
)

// MarketRepository は外部の時系列データソースを抽象化します。
// インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error)
}

// IngestUsecase は外部APIから日足データを取得し、データベースに永続化する
// ユースケースを定義します。分析パイプラインはここで蓄積されたシリーズを
// 読み取るだけで、外部APIには直接依存しません。
type IngestUsecase struct {
	market      MarketRepository
	candle      CandleRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewIngestUsecase は新しい IngestUsecase を作成します。
func NewIngestUsecase(market MarketRepository, candle CandleRepository, rateLimiter ratelimiter.RateLimiterInterface) *IngestUsecase {
	return &IngestUsecase{market: market, candle: candle, rateLimiter: rateLimiter}
}

// ingestOne は1銘柄分の日足を取得してupsertします。外部APIのレスポンスには
// 銘柄コードと時間足が含まれないため、保存前にここで補完します。
func (iu *IngestUsecase) ingestOne(ctx context.Context, symbol string, outputsize int) error {
	cs, err := iu.market.GetTimeSeries(ctx, symbol, ingestInterval, outputsize)
	if err != nil {
		return err
	}

	for i := range cs {
		cs[i].Symbol = symbol
		cs[i].Interval = ingestInterval
	}
	return iu.candle.UpsertBatch(ctx, cs)
}

// IngestAll は全銘柄の日足を順番に取り込みます。リクエスト間の待機は
// レートリミッターに委譲します。1銘柄の失敗で全体を止めるとバッチの
// 再実行コストが大きいため、ログに残して次の銘柄へ進みます。
func (iu *IngestUsecase) IngestAll(ctx context.Context, symbols []string) error {
	for _, s := range symbols {
		iu.rateLimiter.WaitIfNeeded()
		if err := iu.ingestOne(ctx, s, ingestOutputSize); err != nil {
			slog.Error("failed to ingest data", "symbol", s, "error", err)
			continue
		}
	}
	return nil
}
