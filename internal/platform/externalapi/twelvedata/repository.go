package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"levels_backend/internal/feature/candles/domain/entity"
	"levels_backend/internal/feature/candles/usecase"
	"levels_backend/internal/platform/externalapi/twelvedata/dto"
)

// datetimeレイアウト。intradayは時刻付き、日足は日付のみで返る。
const (
	layoutDatetime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// TwelveDataMarket はTwelve Data APIから時系列株価データを取得する
// MarketRepository実装です。
type TwelveDataMarket struct {
	cfg    Config
	client *http.Client
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket はTwelveDataMarketの新しいインスタンスを生成します。
func NewTwelveDataMarket(cfg Config, client *http.Client) *TwelveDataMarket {
	return &TwelveDataMarket{cfg: cfg, client: client}
}

// GetTimeSeries はtime_seriesエンドポイントを呼び出し、取得したバーを
// entity.Candleのスライスに変換して返します。数値フィールドは文字列で
// 返るため、1フィールドでもパースに失敗した場合は全体をエラーにします。
func (t *TwelveDataMarket) GetTimeSeries(ctx context.Context, symbol, interval string, outputsize int) ([]entity.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", interval)
	q.Set("outputsize", strconv.Itoa(outputsize))
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	u := fmt.Sprintf("%s/time_series?%s", t.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	// HTTP 200でもAPIレベルのエラーはstatusフィールドで返る
	if body.Status == "error" {
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	candles := make([]entity.Candle, 0, len(body.Values))
	for _, v := range body.Values {
		candle, err := toCandle(v)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

// toCandle は文字列ベースのAPIバーをentity.Candleに変換します。
func toCandle(v dto.TimeSeriesValue) (entity.Candle, error) {
	tm, err := time.Parse(layoutDatetime, v.Datetime)
	if err != nil {
		tm, err = time.Parse(layoutDate, v.Datetime)
		if err != nil {
			return entity.Candle{}, fmt.Errorf("parse time %q: %w", v.Datetime, err)
		}
	}

	prices := [4]float64{}
	for i, f := range []struct {
		name string
		raw  string
	}{
		{"open", v.Open},
		{"high", v.High},
		{"low", v.Low},
		{"close", v.Close},
	} {
		prices[i], err = strconv.ParseFloat(f.raw, 64)
		if err != nil {
			return entity.Candle{}, fmt.Errorf("parse %s %q: %w", f.name, f.raw, err)
		}
	}

	// FXペアなどは出来高が空文字列で返るため0として扱う
	var vol64 int64
	if v.Volume != "" {
		vol64, err = strconv.ParseInt(v.Volume, 10, 64)
		if err != nil {
			return entity.Candle{}, fmt.Errorf("parse volume %q: %w", v.Volume, err)
		}
	}

	return entity.Candle{
		Time:   tm,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: vol64,
	}, nil
}
